package steps

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"gorm.io/gorm"
)

var categoryPlaceholder = regexp.MustCompile(`\{\{category:([^}]+)\}\}`)

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	payload := []byte(t.replacePlaceholders(body.Content))
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

// replacePlaceholders expands {{id}}, {{entry_id}}, {{user_id}} and {{category:Name}}.
func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{id}}", t.lastID)
	content = strings.ReplaceAll(content, "{{entry_id}}", t.lastEntryID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	return categoryPlaceholder.ReplaceAllStringFunc(content, func(match string) string {
		name := categoryPlaceholder.FindStringSubmatch(match)[1]
		if id, ok := t.categoryIDs[name]; ok {
			return id.String()
		}
		return match
	})
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	if err := t.startServer(); err != nil {
		return err
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequest(method, t.server.URL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
		header: resp.Header,
	}

	var decoded any
	if err := json.Unmarshal(bodyBytes, &decoded); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = decoded

	// Capture the id of a created resource for later steps
	if object, ok := decoded.(map[string]any); ok {
		if id, ok := object["id"].(string); ok && id != "" {
			t.lastID = id
		}
	}
	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(string); ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != t.replacePlaceholders(expectedValue) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, quantity int) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	items, ok := getFieldValue(t.response.body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list in response: %v", field, t.response.body)
	}
	if len(items) != quantity {
		return fmt.Errorf("field '%s' expected %d items, got %d: %v", field, quantity, len(items), items)
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldBe(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if actual := t.response.header.Get(header); actual != expected {
		return fmt.Errorf("header '%s' expected '%s', got '%s'", header, expected, actual)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

// getFieldValue walks a dot separated path through decoded JSON.
// Numeric segments index into arrays.
func getFieldValue(object any, dotSeparatedField string) any {
	field := object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i < 0 || i >= len(arr) {
				return nil
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil
		}
		field = m[currentField]
	}
	return field
}

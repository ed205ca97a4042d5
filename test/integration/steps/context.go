// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/signals/config"
	"github.com/finance-tracker/signals/internal/infra/dependency"
	"github.com/finance-tracker/signals/internal/integration/persistence/model"
	"github.com/finance-tracker/signals/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	server   *httptest.Server
	client   *http.Client
	headers  map[string]string
	response *response

	db       *mock.Db
	redis    *mock.Redis
	timeMock *mock.Time
	upstream *mock.ApiMock
	source   string

	accessToken   string
	currentUserID uuid.UUID
	categoryIDs   map[string]uuid.UUID
	lastEntryID   uuid.UUID
	lastID        string
}

type response struct {
	status int
	header http.Header
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: mock.NewTime(),
		redis:    mock.NewRedis(),
		db: mock.NewDb("finance_tracker", map[string]any{
			"categories":   &model.CategoryModel{},
			"credit_cards": &model.CreditCardModel{},
			"investments":  &model.InvestmentModel{},
			"budgets":      &model.BudgetModel{},
			"entries":      &model.EntryModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		test.stopServer()
		if test.upstream != nil {
			test.upstream.Close()
			test.upstream = nil
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^I am authenticated as a user$`, test.iAmAuthenticatedAsAUser)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// Fixture steps
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^a budget of "([^"]*)" exists for category "([^"]*)" in (\d+)/(\d+)$`, test.aBudgetExistsForCategoryIn)
	ctx.Given(`^an? (expense|income) "([^"]*)" of "([^"]*)" exists on "([^"]*)" for category "([^"]*)"$`, test.anEntryExistsOnForCategory)
	ctx.Given(`^an unpaid expense "([^"]*)" of "([^"]*)" is due on "([^"]*)"$`, test.anUnpaidExpenseIsDueOn)

	// Upstream steps
	ctx.Given(`^the rollup source is upstream$`, test.theRollupSourceIsUpstream)
	ctx.Given(`^the upstream responds to "([^"]*)" "([^"]*)" with status (\d+) and body:$`, test.theUpstreamRespondsWith)
	ctx.Then(`^the upstream should have received (\d+) "([^"]*)" requests? to "([^"]*)"$`, test.theUpstreamShouldHaveReceived)
	ctx.Then(`^the upstream request to "([^"]*)" "([^"]*)" should have query "([^"]*)" with "([^"]*)"$`, test.theUpstreamRequestShouldHaveQuery)
	ctx.Then(`^the upstream request to "([^"]*)" "([^"]*)" should carry a bearer token$`, test.theUpstreamRequestShouldCarryABearerToken)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items?$`, test.theResponseFieldShouldHaveItems)
	ctx.Then(`^the response header "([^"]*)" should be "([^"]*)"$`, test.theResponseHeaderShouldBe)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Cache assertion steps
	ctx.Then(`^redis should hold (\d+) dismissed alert sets?$`, test.redisShouldHoldDismissedAlertSets)
}

func (t *testContext) before() error {
	t.stopServer()
	t.headers = make(map[string]string)
	t.response = nil
	t.source = config.SourceDatabase
	t.accessToken = ""
	t.currentUserID = uuid.Nil
	t.categoryIDs = make(map[string]uuid.UUID)
	t.lastEntryID = uuid.Nil
	t.lastID = ""
	t.timeMock.SetCurrentTime(time.Now())

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	t.redis.Reset()
	return nil
}

// startServer wires a fresh application against the in-memory database and Redis.
// The server is rebuilt whenever the rollup source changes.
func (t *testContext) startServer() error {
	if t.server != nil {
		return nil
	}

	cfg := config.Load()
	cfg.Server.Environment = "test"
	cfg.JWT.Secret = testJWTSecret
	cfg.Signals.Location = "UTC"
	cfg.Signals.Source = t.source
	if t.upstream != nil {
		cfg.Signals.UpstreamURL = t.upstream.GetUrl()
		cfg.Signals.UpstreamTimeout = 2 * time.Second
	}

	injector, err := dependency.NewInjector(cfg, t.db.DbConn, dependency.Options{
		Redis: t.redis.Client,
		Clock: t.timeMock,
		DBHealthChecker: func() bool {
			sqlDB, err := t.db.DbConn.DB()
			return err == nil && sqlDB.Ping() == nil
		},
		CacheHealthChecker: func() bool {
			return t.redis.Client.Ping(context.Background()).Err() == nil
		},
	})
	if err != nil {
		return fmt.Errorf("failed to wire application: %w", err)
	}

	t.server = httptest.NewServer(injector.Router.Setup(cfg.Server.Environment))
	return nil
}

func (t *testContext) stopServer() {
	if t.server != nil {
		t.server.Close()
		t.server = nil
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

func (t *testContext) redisShouldHoldDismissedAlertSets(count int) error {
	keys := t.redis.DismissedKeys()
	if len(keys) != count {
		return fmt.Errorf("expected %d dismissed alert sets, got %d: %v", count, len(keys), keys)
	}
	return nil
}

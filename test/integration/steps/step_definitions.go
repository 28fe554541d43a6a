//go:build integration

// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/finance-tracker/bookkeeper/config"
	"github.com/finance-tracker/bookkeeper/internal/infra/db"
	"github.com/finance-tracker/bookkeeper/internal/infra/dependency"
	"github.com/finance-tracker/bookkeeper/internal/integration/adapters"
	"github.com/finance-tracker/bookkeeper/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	uri         string
	headers     map[string]string
	client      *http.Client
	response    *response
	db          *mock.Db
	timeMock    *mock.Time
	accessToken string
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var serverURI string

// InitializeTestSuite prepares process-wide state before any scenario runs.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: mock.NewTime(),
		db:       mock.NewDb("bookkeeper_integration"),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Step(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Step(`^the following rows exist in "([^"]*)":$`, test.theFollowingRowsExistIn)

	// Auth steps
	ctx.Step(`^I am authenticated$`, test.iAmAuthenticated)
	ctx.Step(`^I hold a token issued at "([^"]*)" valid for "([^"]*)"$`, test.iHoldATokenIssuedAtValidFor)
	ctx.Step(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Step(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Step(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.response = nil
	t.timeMock = mock.NewTime()

	if t.db != nil {
		return t.db.ClearDB()
	}
	return nil
}

func (t *testContext) startServer() error {
	var startErr error
	serverInit.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			startErr = err
			return
		}

		gate := db.NewGate(int64(cfg.Database.PoolSize), cfg.Database.AcquireTimeout)
		injector := dependency.NewInjector(cfg, t.db.DbConn, gate)
		engine := injector.Router.Setup(cfg.Server.Environment)

		serverURI = httptest.NewServer(engine).URL
	})
	if startErr != nil {
		return startErr
	}
	t.uri = serverURI

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return errors.New("server did not become healthy")
}

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

func (t *testContext) theFollowingRowsExistIn(table string, content *godog.DocString) error {
	var rows []map[string]any
	if err := json.Unmarshal([]byte(content.Content), &rows); err != nil {
		return fmt.Errorf("failed to parse rows: %w", err)
	}
	return t.db.Insert(table, rows)
}

func (t *testContext) iAmAuthenticated() error {
	token, err := adapters.NewTokenService(testJWTSecret).GenerateAccessToken("integration", time.Hour)
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iHoldATokenIssuedAtValidFor(issuedAt, validity string) error {
	at, err := time.Parse(time.RFC3339, issuedAt)
	if err != nil {
		return fmt.Errorf("invalid issue time: %w", err)
	}
	duration, err := time.ParseDuration(validity)
	if err != nil {
		return fmt.Errorf("invalid validity: %w", err)
	}

	t.timeMock.SetCurrentTime(at)
	token, err := adapters.NewTokenServiceWithClock(testJWTSecret, t.timeMock.Now).GenerateAccessToken("integration", duration)
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

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
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(body.Content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
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
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
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
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, quantity int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	items, ok := getFieldValue(body, field).([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, body)
	}
	if len(items) != quantity {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, quantity, len(items))
	}
	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.theDbShouldContainObjectsWithCriteria(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}
	return t.theDbShouldContainObjectsWithCriteria(quantity, table, criteria)
}

func (t *testContext) theDbShouldContainObjectsWithCriteria(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	entitySlicePtr := reflect.New(entitySlice.Type())
	entitySlicePtr.Elem().Set(entitySlice)

	query := t.db.DbConn.Model(entity)
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

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}

package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/centavo/backend/internal/application/usecase/account"
	"github.com/centavo/backend/internal/application/usecase/dashboard"
	"github.com/centavo/backend/internal/application/usecase/futureentry"
	"github.com/centavo/backend/internal/application/usecase/installment"
	"github.com/centavo/backend/internal/application/usecase/transaction"
	"github.com/centavo/backend/internal/infra/server/router"
	"github.com/centavo/backend/internal/integration/entrypoint/controller"
	"github.com/centavo/backend/internal/integration/persistence"
	"github.com/centavo/backend/internal/integration/persistence/model"
	"github.com/centavo/backend/test/integration/mock"
)

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"accounts":              &model.AccountModel{},
			"transactions":          &model.TransactionModel{},
			"future_entries":        &model.FutureEntryModel{},
			"installment_purchases": &model.InstallmentPurchaseModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Seeding steps
	ctx.Given(`^a "([^"]*)" account "([^"]*)" exists with starting balance "([^"]*)"$`, test.anAccountExistsWithStartingBalance)
	ctx.Given(`^a credit card "([^"]*)" exists with closing day (\d+) and due day (\d+)$`, test.aCreditCardExistsWithStatementDays)
	ctx.Given(`^a credit card "([^"]*)" exists without statement days$`, test.aCreditCardExistsWithoutStatementDays)
	ctx.Given(`^a pending "([^"]*)" entry "([^"]*)" of "([^"]*)" due "([^"]*)" exists for the account$`, test.aPendingEntryExistsForTheAccount)
	ctx.Given(`^a "([^"]*)" transaction "([^"]*)" of "([^"]*)" on "([^"]*)" exists for the account$`, test.aTransactionExistsForTheAccount)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			accountRepo := persistence.NewAccountRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			futureEntryRepo := persistence.NewFutureEntryRepository(testDB.DbConn)
			purchaseRepo := persistence.NewInstallmentPurchaseRepository(testDB.DbConn)
			snapshotLoader := persistence.NewSnapshotLoader(testDB.DbConn)

			// Create account use cases
			createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
			listAccountsUseCase := account.NewListAccountsUseCase(snapshotLoader)
			updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
			deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)

			// Create transaction use cases
			createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, accountRepo)
			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

			// Create installment use cases
			createPurchaseUseCase := installment.NewCreatePurchaseUseCase(purchaseRepo, futureEntryRepo, accountRepo)
			listPurchasesUseCase := installment.NewListPurchasesUseCase(purchaseRepo)
			deletePurchaseUseCase := installment.NewDeletePurchaseUseCase(purchaseRepo, futureEntryRepo)

			// Create future entry use cases
			createFutureEntryUseCase := futureentry.NewCreateFutureEntryUseCase(futureEntryRepo, accountRepo)
			listFutureEntriesUseCase := futureentry.NewListFutureEntriesUseCase(futureEntryRepo)
			payFutureEntryUseCase := futureentry.NewPayFutureEntryUseCase(futureEntryRepo, transactionRepo, accountRepo)
			deleteFutureEntryUseCase := futureentry.NewDeleteFutureEntryUseCase(futureEntryRepo, deletePurchaseUseCase)

			// Create dashboard use cases
			summaryUseCase := dashboard.NewGetSummaryUseCase(snapshotLoader)
			timelineUseCase := dashboard.NewGetTimelineUseCase(snapshotLoader)
			gridUseCase := dashboard.NewGetCategoryGridUseCase(snapshotLoader)
			netWorthUseCase := dashboard.NewGetNetWorthHistoryUseCase(snapshotLoader)
			statementUseCase := dashboard.NewGetCardStatementUseCase(snapshotLoader)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})
			accountController := controller.NewAccountController(
				createAccountUseCase,
				listAccountsUseCase,
				updateAccountUseCase,
				deleteAccountUseCase,
			)
			transactionController := controller.NewTransactionController(
				createTransactionUseCase,
				listTransactionsUseCase,
				deleteTransactionUseCase,
			)
			futureEntryController := controller.NewFutureEntryController(
				createFutureEntryUseCase,
				listFutureEntriesUseCase,
				payFutureEntryUseCase,
				deleteFutureEntryUseCase,
			)
			installmentController := controller.NewInstallmentController(
				createPurchaseUseCase,
				listPurchasesUseCase,
				deletePurchaseUseCase,
			)
			dashboardController := controller.NewDashboardController(
				summaryUseCase,
				timelineUseCase,
				gridUseCase,
				netWorthUseCase,
				statementUseCase,
			)

			r := router.NewRouter(
				healthController,
				accountController,
				transactionController,
				futureEntryController,
				installmentController,
				dashboardController,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) anAccountExistsWithStartingBalance(category, name, balance string) error {
	starting, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("invalid starting balance %q: %w", balance, err)
	}

	accountID := uuid.New()
	t.accountID = accountID

	now := time.Now().UTC()
	accountModel := &model.AccountModel{
		ID:              accountID,
		Name:            name,
		Category:        category,
		StartingBalance: starting,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return t.db.DbConn.Create(accountModel).Error
}

func (t *testContext) aCreditCardExistsWithStatementDays(name string, closingDay, dueDay int) error {
	cardID := uuid.New()
	t.cardID = cardID

	now := time.Now().UTC()
	cardModel := &model.AccountModel{
		ID:              cardID,
		Name:            name,
		Category:        "credit-card",
		StartingBalance: decimal.Zero,
		ClosingDay:      &closingDay,
		DueDay:          &dueDay,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return t.db.DbConn.Create(cardModel).Error
}

func (t *testContext) aCreditCardExistsWithoutStatementDays(name string) error {
	cardID := uuid.New()
	t.cardID = cardID

	now := time.Now().UTC()
	cardModel := &model.AccountModel{
		ID:              cardID,
		Name:            name,
		Category:        "credit-card",
		StartingBalance: decimal.Zero,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	return t.db.DbConn.Create(cardModel).Error
}

func (t *testContext) aPendingEntryExistsForTheAccount(kind, description, amount, dueDate string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	due, err := time.Parse("2006-01-02", dueDate)
	if err != nil {
		return fmt.Errorf("invalid due date %q: %w", dueDate, err)
	}

	entryID := uuid.New()
	t.entryID = entryID
	accountID := t.accountID

	now := time.Now().UTC()
	entryModel := &model.FutureEntryModel{
		ID:          entryID,
		Description: description,
		Amount:      value,
		Kind:        kind,
		DueDate:     due,
		Status:      "pending",
		Category:    "utilities",
		AccountID:   &accountID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(entryModel).Error
}

func (t *testContext) aTransactionExistsForTheAccount(kind, description, amount, date string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:          uuid.New(),
		Description: description,
		Amount:      value,
		Kind:        kind,
		Date:        day,
		Category:    "other",
		AccountID:   t.accountID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
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
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
		t.captureIDs(responseBody)
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

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
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

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

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
	return fmt.Errorf("table '%s' not found in models", table)
}

package queries_test

import (
	"context"
	"testing"
	"time"

	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var queryTestNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

type GetActiveOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetActiveOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetActiveOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) newOrder(number string) *order.Order {
	total, err := kernel.NewZeroMoney("USD")
	suite.Require().NoError(err)

	aggregate, _, err := order.NewOrder(
		kernel.NewUUID(), number, kernel.NewUUID(), kernel.NewUUID(), total, "")
	suite.Require().NoError(err)
	return aggregate
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) addItem(aggregate *order.Order, amount string, quantity int) {
	price, err := kernel.NewMoneyFromString(amount, "USD")
	suite.Require().NoError(err)

	item, err := order.NewOrderItem(
		kernel.NewUUID(), kernel.NewUUID(), "Pad Thai", price, quantity, "")
	suite.Require().NoError(err)

	err = aggregate.AddItem(item)
	suite.Require().NoError(err)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetActiveOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyActive() {
	ctx := context.Background()

	pending := suite.newOrder("ORD-0001")
	suite.addItem(pending, "12.50", 2)

	confirmed := suite.newOrder("ORD-0002")
	_, err := confirmed.ChangeStatus(order.Confirmed, queryTestNow)
	suite.Require().NoError(err)

	cancelled := suite.newOrder("ORD-0003")
	_, err = cancelled.Cancel(queryTestNow)
	suite.Require().NoError(err)

	completed := suite.newOrder("ORD-0004")
	for _, next := range []order.Status{order.Confirmed, order.Preparing, order.Ready, order.Completed} {
		_, err = completed.ChangeStatus(next, queryTestNow)
		suite.Require().NoError(err)
	}

	for _, aggregate := range []*order.Order{pending, confirmed, cancelled, completed} {
		suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))
	}

	query := queries.NewGetActiveOrdersQuery()
	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Len(result, 2)

	byNumber := make(map[string]queries.GetActiveOrdersQueryResponse)
	for _, r := range result {
		byNumber[r.OrderNumber] = r
	}

	suite.Contains(byNumber, "ORD-0001")
	suite.Contains(byNumber, "ORD-0002")
	suite.NotContains(byNumber, "ORD-0003")
	suite.NotContains(byNumber, "ORD-0004")

	suite.Equal("Pending", byNumber["ORD-0001"].Status)
	suite.Equal("25.00", byNumber["ORD-0001"].TotalAmount)
	suite.Equal("USD", byNumber["ORD-0001"].Currency)
	suite.Equal(1, byNumber["ORD-0001"].ItemCount)

	suite.Equal("Confirmed", byNumber["ORD-0002"].Status)
	suite.Equal(0, byNumber["ORD-0002"].ItemCount)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_CountsItemsPerOrder() {
	ctx := context.Background()

	aggregate := suite.newOrder("ORD-0005")
	suite.addItem(aggregate, "3.00", 1)
	suite.addItem(aggregate, "4.25", 2)
	suite.addItem(aggregate, "1.75", 4)
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	query := queries.NewGetActiveOrdersQuery()
	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(3, result[0].ItemCount)
	suite.Equal("18.50", result[0].TotalAmount)
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetActiveOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetActiveOrdersQuery constructor")
}

func (suite *GetActiveOrdersQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	ctx := context.Background()
	for i := range 20 {
		aggregate := suite.newOrder("ORD-1" + string(rune('0'+i/10)) + string(rune('0'+i%10)))
		suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))
	}

	cancelledCtx, cancel := context.WithCancel(ctx)
	cancel()

	query := queries.NewGetActiveOrdersQuery()
	result, err := suite.handler.Handle(cancelledCtx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

func TestGetActiveOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetActiveOrdersQueryHandlerTestSuite))
}

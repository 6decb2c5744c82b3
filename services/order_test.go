package services

import (
	"context"
	"testing"

	"github.com/charankanumuri/proshop96/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockOrderRepository struct {
	createFunc       func(ctx context.Context, order *models.Order) (*models.Order, error)
	findByIDFunc     func(ctx context.Context, id primitive.ObjectID) (*models.Order, error)
	findByUserIDFunc func(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	findAllFunc      func(ctx context.Context) ([]models.Order, error)
	saveFunc         func(ctx context.Context, order *models.Order) (*models.Order, error)
}

func (m *mockOrderRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	return m.createFunc(ctx, order)
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockOrderRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	return m.findByUserIDFunc(ctx, userID)
}

func (m *mockOrderRepository) FindAll(ctx context.Context) ([]models.Order, error) {
	return m.findAllFunc(ctx)
}

func (m *mockOrderRepository) Save(ctx context.Context, order *models.Order) (*models.Order, error) {
	return m.saveFunc(ctx, order)
}

type mockUserFinder struct {
	findByIDFunc func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

func (m *mockUserFinder) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return m.findByIDFunc(ctx, id)
}

func passthroughSave(ctx context.Context, order *models.Order) (*models.Order, error) {
	return order, nil
}

func newTestCaller(admin bool) models.AuthUser {
	return models.AuthUser{
		ID:      primitive.NewObjectID(),
		Name:    "user1",
		Email:   "user1@example.com",
		IsAdmin: admin,
	}
}

func TestOrderService_Create_EmptyItems(t *testing.T) {
	created := false
	repo := &mockOrderRepository{
		createFunc: func(ctx context.Context, order *models.Order) (*models.Order, error) {
			created = true
			return order, nil
		},
	}
	svc := NewOrderService(repo, &mockUserFinder{}, nil)

	_, err := svc.Create(context.Background(), newTestCaller(false), CreateOrderInput{})

	assert.ErrorIs(t, err, models.ErrEmptyOrder)
	assert.False(t, created, "nothing should be persisted for an empty order")
}

func TestOrderService_Create(t *testing.T) {
	repo := &mockOrderRepository{
		createFunc: func(ctx context.Context, order *models.Order) (*models.Order, error) {
			order.ID = primitive.NewObjectID()
			return order, nil
		},
	}
	svc := NewOrderService(repo, &mockUserFinder{}, nil)
	caller := newTestCaller(false)

	order, err := svc.Create(context.Background(), caller, CreateOrderInput{
		OrderItems: []models.OrderItem{
			{Product: primitive.NewObjectID(), Name: "Airpods", Price: 10.00, Qty: 2},
			{Product: primitive.NewObjectID(), Name: "Mouse", Price: 5.00, Qty: 1},
		},
		ShippingAddress: models.ShippingAddress{Address: "1 Main St", City: "Springfield", PostalCode: "12345", Country: "USA"},
		PaymentMethod:   "PayPal",
		ItemsPrice:      24.00, // client-supplied value is ignored
		ShippingPrice:   5.00,
		TaxPrice:        2.50,
		TotalPrice:      29.50,
	})

	require.NoError(t, err)
	assert.Equal(t, caller.ID, order.UserID)
	assert.InDelta(t, 25.00, order.ItemsPrice, 1e-9)
	assert.InDelta(t, 5.00, order.ShippingPrice, 1e-9)
	assert.InDelta(t, 2.50, order.TaxPrice, 1e-9)
	assert.InDelta(t, 29.50, order.TotalPrice, 1e-9)
	assert.False(t, order.IsPaid)
	assert.False(t, order.IsDelivered)
	assert.Nil(t, order.PaidAt)
	assert.Nil(t, order.DeliveredAt)
	assert.Nil(t, order.PaymentResult)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestOrderService_GetByID(t *testing.T) {
	owner := newTestCaller(false)
	orderID := primitive.NewObjectID()
	stored := models.Order{ID: orderID, UserID: owner.ID}

	repo := &mockOrderRepository{
		findByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
			if id != orderID {
				return nil, models.ErrOrderNotFound
			}
			order := stored
			return &order, nil
		},
	}
	users := &mockUserFinder{
		findByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
			return &models.User{ID: owner.ID, Name: owner.Name, Email: owner.Email}, nil
		},
	}
	svc := NewOrderService(repo, users, nil)

	t.Run("owner_sees_order_with_resolved_user", func(t *testing.T) {
		order, err := svc.GetByID(context.Background(), owner, orderID)
		require.NoError(t, err)
		require.NotNil(t, order.User)
		assert.Equal(t, owner.Name, order.User.Name)
		assert.Equal(t, owner.Email, order.User.Email)
	})

	t.Run("admin_sees_any_order", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), newTestCaller(true), orderID)
		assert.NoError(t, err)
	})

	t.Run("other_user_is_rejected", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), newTestCaller(false), orderID)
		assert.ErrorIs(t, err, models.ErrNotOrderOwner)
	})

	t.Run("unknown_id", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), owner, primitive.NewObjectID())
		assert.ErrorIs(t, err, models.ErrOrderNotFound)
	})
}

func TestOrderService_MarkPaid_NotFound(t *testing.T) {
	repo := &mockOrderRepository{
		findByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
			return nil, models.ErrOrderNotFound
		},
	}
	svc := NewOrderService(repo, &mockUserFinder{}, nil)

	_, err := svc.MarkPaid(context.Background(), newTestCaller(false), primitive.NewObjectID(), models.PaymentResult{})

	assert.ErrorIs(t, err, models.ErrOrderNotFound)
}

func TestOrderService_MarkPaid(t *testing.T) {
	orderID := primitive.NewObjectID()
	stored := &models.Order{ID: orderID, UserID: primitive.NewObjectID()}
	repo := &mockOrderRepository{
		findByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
			return stored, nil
		},
		saveFunc: func(ctx context.Context, order *models.Order) (*models.Order, error) {
			stored = order
			return order, nil
		},
	}
	svc := NewOrderService(repo, &mockUserFinder{}, nil)

	payment := models.PaymentResult{
		ID:           "PAY1",
		Status:       "COMPLETED",
		UpdateTime:   "t",
		EmailAddress: "a@b.com",
	}
	order, err := svc.MarkPaid(context.Background(), newTestCaller(false), orderID, payment)

	require.NoError(t, err)
	assert.True(t, order.IsPaid)
	require.NotNil(t, order.PaidAt)
	require.NotNil(t, order.PaymentResult)
	assert.Equal(t, payment, *order.PaymentResult)

	// a repeated confirmation overwrites the previous one
	retry := models.PaymentResult{ID: "PAY2", Status: "COMPLETED", UpdateTime: "t2", EmailAddress: "a@b.com"}
	order, err = svc.MarkPaid(context.Background(), newTestCaller(false), orderID, retry)
	require.NoError(t, err)
	assert.Equal(t, retry, *order.PaymentResult)
}

func TestOrderService_MarkDelivered_RequiresPayment(t *testing.T) {
	orderID := primitive.NewObjectID()
	saved := false
	repo := &mockOrderRepository{
		findByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
			return &models.Order{ID: orderID, UserID: primitive.NewObjectID()}, nil
		},
		saveFunc: func(ctx context.Context, order *models.Order) (*models.Order, error) {
			saved = true
			return order, nil
		},
	}
	svc := NewOrderService(repo, &mockUserFinder{}, nil)

	_, err := svc.MarkDelivered(context.Background(), newTestCaller(true), orderID)

	assert.ErrorIs(t, err, models.ErrOrderNotPaid)
	assert.False(t, saved, "an unpaid order must not be marked delivered")
}

func TestOrderService_MarkDelivered(t *testing.T) {
	orderID := primitive.NewObjectID()
	repo := &mockOrderRepository{
		findByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.Order, error) {
			return &models.Order{ID: orderID, UserID: primitive.NewObjectID(), IsPaid: true}, nil
		},
		saveFunc: passthroughSave,
	}
	svc := NewOrderService(repo, &mockUserFinder{}, nil)

	order, err := svc.MarkDelivered(context.Background(), newTestCaller(true), orderID)

	require.NoError(t, err)
	assert.True(t, order.IsDelivered)
	assert.NotNil(t, order.DeliveredAt)
}

func TestOrderService_ListMine(t *testing.T) {
	caller := newTestCaller(false)
	mine := []models.Order{
		{ID: primitive.NewObjectID(), UserID: caller.ID},
		{ID: primitive.NewObjectID(), UserID: caller.ID},
	}
	repo := &mockOrderRepository{
		findByUserIDFunc: func(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
			require.Equal(t, caller.ID, userID)
			return mine, nil
		},
	}
	svc := NewOrderService(repo, &mockUserFinder{}, nil)

	orders, err := svc.ListMine(context.Background(), caller)

	require.NoError(t, err)
	assert.Equal(t, mine, orders)
}

func TestOrderService_ListAll(t *testing.T) {
	userA := primitive.NewObjectID()
	userB := primitive.NewObjectID()
	repo := &mockOrderRepository{
		findAllFunc: func(ctx context.Context) ([]models.Order, error) {
			return []models.Order{
				{ID: primitive.NewObjectID(), UserID: userA},
				{ID: primitive.NewObjectID(), UserID: userB},
				{ID: primitive.NewObjectID(), UserID: userA},
			}, nil
		},
	}
	users := &mockUserFinder{
		findByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
			name := "user-a"
			if id == userB {
				name = "user-b"
			}
			return &models.User{ID: id, Name: name, Email: "hidden@example.com"}, nil
		},
	}
	svc := NewOrderService(repo, users, nil)

	orders, err := svc.ListAll(context.Background())

	require.NoError(t, err)
	require.Len(t, orders, 3)
	for _, order := range orders {
		require.NotNil(t, order.User)
		assert.Equal(t, order.UserID, order.User.ID)
		assert.Empty(t, order.User.Email, "list view carries only id and name")
	}
	assert.Equal(t, "user-a", orders[0].User.Name)
	assert.Equal(t, "user-b", orders[1].User.Name)
}

package repository

import (
	"context"

	"develfood/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockOrderRepository is a testify mock of the OrderRepository interface.
type MockOrderRepository struct {
	mock.Mock
}

type MockOrderRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockOrderRepository) EXPECT() *MockOrderRepository_Expecter {
	return &MockOrderRepository_Expecter{mock: &_m.Mock}
}

// FindAll provides a mock function for the type MockOrderRepository
func (_m *MockOrderRepository) FindAll(ctx context.Context) ([]*entity.Order, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for FindAll")
	}

	var r0 []*entity.Order
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Order, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []*entity.Order); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Order)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrderRepository_FindAll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindAll'
type MockOrderRepository_FindAll_Call struct {
	*mock.Call
}

// FindAll is a helper method to define mock.On call
func (_e *MockOrderRepository_Expecter) FindAll(ctx interface{}) *MockOrderRepository_FindAll_Call {
	return &MockOrderRepository_FindAll_Call{Call: _e.mock.On("FindAll", ctx)}
}

func (_c *MockOrderRepository_FindAll_Call) Run(run func(ctx context.Context)) *MockOrderRepository_FindAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockOrderRepository_FindAll_Call) Return(_a0 []*entity.Order, _a1 error) *MockOrderRepository_FindAll_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockOrderRepository_FindAll_Call) RunAndReturn(run func(context.Context) ([]*entity.Order, error)) *MockOrderRepository_FindAll_Call {
	_c.Call.Return(run)

	return _c
}

// FindByID provides a mock function for the type MockOrderRepository
func (_m *MockOrderRepository) FindByID(ctx context.Context, id int) (*entity.Order, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.Order
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) (*entity.Order, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) *entity.Order); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Order)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockOrderRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockOrderRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
func (_e *MockOrderRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockOrderRepository_FindByID_Call {
	return &MockOrderRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockOrderRepository_FindByID_Call) Run(run func(ctx context.Context, id int)) *MockOrderRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int))
	})

	return _c
}

func (_c *MockOrderRepository_FindByID_Call) Return(_a0 *entity.Order, _a1 error) *MockOrderRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockOrderRepository_FindByID_Call) RunAndReturn(run func(context.Context, int) (*entity.Order, error)) *MockOrderRepository_FindByID_Call {
	_c.Call.Return(run)

	return _c
}

// Update provides a mock function for the type MockOrderRepository
func (_m *MockOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	ret := _m.Called(ctx, order)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Order) error); ok {
		r0 = rf(ctx, order)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockOrderRepository_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockOrderRepository_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
func (_e *MockOrderRepository_Expecter) Update(ctx interface{}, order interface{}) *MockOrderRepository_Update_Call {
	return &MockOrderRepository_Update_Call{Call: _e.mock.On("Update", ctx, order)}
}

func (_c *MockOrderRepository_Update_Call) Run(run func(ctx context.Context, order *entity.Order)) *MockOrderRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Order))
	})

	return _c
}

func (_c *MockOrderRepository_Update_Call) Return(_a0 error) *MockOrderRepository_Update_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockOrderRepository_Update_Call) RunAndReturn(run func(context.Context, *entity.Order) error) *MockOrderRepository_Update_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockOrderRepository creates a new instance of MockOrderRepository. It also registers a cleanup function to assert the mocks expectations.
func NewMockOrderRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockOrderRepository {
	m := &MockOrderRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

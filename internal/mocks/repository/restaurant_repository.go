package repository

import (
	"context"

	"develfood/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockRestaurantRepository is a testify mock of the RestaurantRepository interface.
type MockRestaurantRepository struct {
	mock.Mock
}

type MockRestaurantRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockRestaurantRepository) EXPECT() *MockRestaurantRepository_Expecter {
	return &MockRestaurantRepository_Expecter{mock: &_m.Mock}
}

// FindAll provides a mock function for the type MockRestaurantRepository
func (_m *MockRestaurantRepository) FindAll(ctx context.Context) ([]*entity.Restaurant, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for FindAll")
	}

	var r0 []*entity.Restaurant
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Restaurant, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []*entity.Restaurant); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Restaurant)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRestaurantRepository_FindAll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindAll'
type MockRestaurantRepository_FindAll_Call struct {
	*mock.Call
}

// FindAll is a helper method to define mock.On call
func (_e *MockRestaurantRepository_Expecter) FindAll(ctx interface{}) *MockRestaurantRepository_FindAll_Call {
	return &MockRestaurantRepository_FindAll_Call{Call: _e.mock.On("FindAll", ctx)}
}

func (_c *MockRestaurantRepository_FindAll_Call) Run(run func(ctx context.Context)) *MockRestaurantRepository_FindAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockRestaurantRepository_FindAll_Call) Return(_a0 []*entity.Restaurant, _a1 error) *MockRestaurantRepository_FindAll_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockRestaurantRepository_FindAll_Call) RunAndReturn(run func(context.Context) ([]*entity.Restaurant, error)) *MockRestaurantRepository_FindAll_Call {
	_c.Call.Return(run)

	return _c
}

// FindByCNPJ provides a mock function for the type MockRestaurantRepository
func (_m *MockRestaurantRepository) FindByCNPJ(ctx context.Context, cnpj string) (*entity.Restaurant, error) {
	ret := _m.Called(ctx, cnpj)

	if len(ret) == 0 {
		panic("no return value specified for FindByCNPJ")
	}

	var r0 *entity.Restaurant
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, string) (*entity.Restaurant, error)); ok {
		return rf(ctx, cnpj)
	}
	if rf, ok := ret.Get(0).(func(context.Context, string) *entity.Restaurant); ok {
		r0 = rf(ctx, cnpj)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Restaurant)
	}

	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, cnpj)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockRestaurantRepository_FindByCNPJ_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByCNPJ'
type MockRestaurantRepository_FindByCNPJ_Call struct {
	*mock.Call
}

// FindByCNPJ is a helper method to define mock.On call
func (_e *MockRestaurantRepository_Expecter) FindByCNPJ(ctx interface{}, cnpj interface{}) *MockRestaurantRepository_FindByCNPJ_Call {
	return &MockRestaurantRepository_FindByCNPJ_Call{Call: _e.mock.On("FindByCNPJ", ctx, cnpj)}
}

func (_c *MockRestaurantRepository_FindByCNPJ_Call) Run(run func(ctx context.Context, cnpj string)) *MockRestaurantRepository_FindByCNPJ_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(string))
	})

	return _c
}

func (_c *MockRestaurantRepository_FindByCNPJ_Call) Return(_a0 *entity.Restaurant, _a1 error) *MockRestaurantRepository_FindByCNPJ_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockRestaurantRepository_FindByCNPJ_Call) RunAndReturn(run func(context.Context, string) (*entity.Restaurant, error)) *MockRestaurantRepository_FindByCNPJ_Call {
	_c.Call.Return(run)

	return _c
}

// Create provides a mock function for the type MockRestaurantRepository
func (_m *MockRestaurantRepository) Create(ctx context.Context, restaurant *entity.Restaurant) error {
	ret := _m.Called(ctx, restaurant)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Restaurant) error); ok {
		r0 = rf(ctx, restaurant)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRestaurantRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockRestaurantRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
func (_e *MockRestaurantRepository_Expecter) Create(ctx interface{}, restaurant interface{}) *MockRestaurantRepository_Create_Call {
	return &MockRestaurantRepository_Create_Call{Call: _e.mock.On("Create", ctx, restaurant)}
}

func (_c *MockRestaurantRepository_Create_Call) Run(run func(ctx context.Context, restaurant *entity.Restaurant)) *MockRestaurantRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Restaurant))
	})

	return _c
}

func (_c *MockRestaurantRepository_Create_Call) Return(_a0 error) *MockRestaurantRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockRestaurantRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Restaurant) error) *MockRestaurantRepository_Create_Call {
	_c.Call.Return(run)

	return _c
}

// Update provides a mock function for the type MockRestaurantRepository
func (_m *MockRestaurantRepository) Update(ctx context.Context, restaurant *entity.Restaurant) error {
	ret := _m.Called(ctx, restaurant)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Restaurant) error); ok {
		r0 = rf(ctx, restaurant)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockRestaurantRepository_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockRestaurantRepository_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
func (_e *MockRestaurantRepository_Expecter) Update(ctx interface{}, restaurant interface{}) *MockRestaurantRepository_Update_Call {
	return &MockRestaurantRepository_Update_Call{Call: _e.mock.On("Update", ctx, restaurant)}
}

func (_c *MockRestaurantRepository_Update_Call) Run(run func(ctx context.Context, restaurant *entity.Restaurant)) *MockRestaurantRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Restaurant))
	})

	return _c
}

func (_c *MockRestaurantRepository_Update_Call) Return(_a0 error) *MockRestaurantRepository_Update_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockRestaurantRepository_Update_Call) RunAndReturn(run func(context.Context, *entity.Restaurant) error) *MockRestaurantRepository_Update_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockRestaurantRepository creates a new instance of MockRestaurantRepository. It also registers a cleanup function to assert the mocks expectations.
func NewMockRestaurantRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockRestaurantRepository {
	m := &MockRestaurantRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

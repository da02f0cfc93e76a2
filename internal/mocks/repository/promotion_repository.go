package repository

import (
	"context"

	"develfood/internal/domain/entity"

	mock "github.com/stretchr/testify/mock"
)

// MockPromotionRepository is a testify mock of the PromotionRepository interface.
type MockPromotionRepository struct {
	mock.Mock
}

type MockPromotionRepository_Expecter struct {
	mock *mock.Mock
}

func (_m *MockPromotionRepository) EXPECT() *MockPromotionRepository_Expecter {
	return &MockPromotionRepository_Expecter{mock: &_m.Mock}
}

// FindAll provides a mock function for the type MockPromotionRepository
func (_m *MockPromotionRepository) FindAll(ctx context.Context) ([]*entity.Promotion, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for FindAll")
	}

	var r0 []*entity.Promotion
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]*entity.Promotion, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []*entity.Promotion); ok {
		r0 = rf(ctx)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.Promotion)
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPromotionRepository_FindAll_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindAll'
type MockPromotionRepository_FindAll_Call struct {
	*mock.Call
}

// FindAll is a helper method to define mock.On call
func (_e *MockPromotionRepository_Expecter) FindAll(ctx interface{}) *MockPromotionRepository_FindAll_Call {
	return &MockPromotionRepository_FindAll_Call{Call: _e.mock.On("FindAll", ctx)}
}

func (_c *MockPromotionRepository_FindAll_Call) Run(run func(ctx context.Context)) *MockPromotionRepository_FindAll_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})

	return _c
}

func (_c *MockPromotionRepository_FindAll_Call) Return(_a0 []*entity.Promotion, _a1 error) *MockPromotionRepository_FindAll_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockPromotionRepository_FindAll_Call) RunAndReturn(run func(context.Context) ([]*entity.Promotion, error)) *MockPromotionRepository_FindAll_Call {
	_c.Call.Return(run)

	return _c
}

// FindByID provides a mock function for the type MockPromotionRepository
func (_m *MockPromotionRepository) FindByID(ctx context.Context, id int) (*entity.Promotion, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for FindByID")
	}

	var r0 *entity.Promotion
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int) (*entity.Promotion, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int) *entity.Promotion); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.Promotion)
	}

	if rf, ok := ret.Get(1).(func(context.Context, int) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockPromotionRepository_FindByID_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'FindByID'
type MockPromotionRepository_FindByID_Call struct {
	*mock.Call
}

// FindByID is a helper method to define mock.On call
func (_e *MockPromotionRepository_Expecter) FindByID(ctx interface{}, id interface{}) *MockPromotionRepository_FindByID_Call {
	return &MockPromotionRepository_FindByID_Call{Call: _e.mock.On("FindByID", ctx, id)}
}

func (_c *MockPromotionRepository_FindByID_Call) Run(run func(ctx context.Context, id int)) *MockPromotionRepository_FindByID_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int))
	})

	return _c
}

func (_c *MockPromotionRepository_FindByID_Call) Return(_a0 *entity.Promotion, _a1 error) *MockPromotionRepository_FindByID_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockPromotionRepository_FindByID_Call) RunAndReturn(run func(context.Context, int) (*entity.Promotion, error)) *MockPromotionRepository_FindByID_Call {
	_c.Call.Return(run)

	return _c
}

// Create provides a mock function for the type MockPromotionRepository
func (_m *MockPromotionRepository) Create(ctx context.Context, promotion *entity.Promotion) error {
	ret := _m.Called(ctx, promotion)

	if len(ret) == 0 {
		panic("no return value specified for Create")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Promotion) error); ok {
		r0 = rf(ctx, promotion)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockPromotionRepository_Create_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Create'
type MockPromotionRepository_Create_Call struct {
	*mock.Call
}

// Create is a helper method to define mock.On call
func (_e *MockPromotionRepository_Expecter) Create(ctx interface{}, promotion interface{}) *MockPromotionRepository_Create_Call {
	return &MockPromotionRepository_Create_Call{Call: _e.mock.On("Create", ctx, promotion)}
}

func (_c *MockPromotionRepository_Create_Call) Run(run func(ctx context.Context, promotion *entity.Promotion)) *MockPromotionRepository_Create_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Promotion))
	})

	return _c
}

func (_c *MockPromotionRepository_Create_Call) Return(_a0 error) *MockPromotionRepository_Create_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockPromotionRepository_Create_Call) RunAndReturn(run func(context.Context, *entity.Promotion) error) *MockPromotionRepository_Create_Call {
	_c.Call.Return(run)

	return _c
}

// Update provides a mock function for the type MockPromotionRepository
func (_m *MockPromotionRepository) Update(ctx context.Context, promotion *entity.Promotion) error {
	ret := _m.Called(ctx, promotion)

	if len(ret) == 0 {
		panic("no return value specified for Update")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, *entity.Promotion) error); ok {
		r0 = rf(ctx, promotion)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockPromotionRepository_Update_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Update'
type MockPromotionRepository_Update_Call struct {
	*mock.Call
}

// Update is a helper method to define mock.On call
func (_e *MockPromotionRepository_Expecter) Update(ctx interface{}, promotion interface{}) *MockPromotionRepository_Update_Call {
	return &MockPromotionRepository_Update_Call{Call: _e.mock.On("Update", ctx, promotion)}
}

func (_c *MockPromotionRepository_Update_Call) Run(run func(ctx context.Context, promotion *entity.Promotion)) *MockPromotionRepository_Update_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(*entity.Promotion))
	})

	return _c
}

func (_c *MockPromotionRepository_Update_Call) Return(_a0 error) *MockPromotionRepository_Update_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockPromotionRepository_Update_Call) RunAndReturn(run func(context.Context, *entity.Promotion) error) *MockPromotionRepository_Update_Call {
	_c.Call.Return(run)

	return _c
}

// Delete provides a mock function for the type MockPromotionRepository
func (_m *MockPromotionRepository) Delete(ctx context.Context, id int) error {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for Delete")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, int) error); ok {
		r0 = rf(ctx, id)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockPromotionRepository_Delete_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Delete'
type MockPromotionRepository_Delete_Call struct {
	*mock.Call
}

// Delete is a helper method to define mock.On call
func (_e *MockPromotionRepository_Expecter) Delete(ctx interface{}, id interface{}) *MockPromotionRepository_Delete_Call {
	return &MockPromotionRepository_Delete_Call{Call: _e.mock.On("Delete", ctx, id)}
}

func (_c *MockPromotionRepository_Delete_Call) Run(run func(ctx context.Context, id int)) *MockPromotionRepository_Delete_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int))
	})

	return _c
}

func (_c *MockPromotionRepository_Delete_Call) Return(_a0 error) *MockPromotionRepository_Delete_Call {
	_c.Call.Return(_a0)

	return _c
}

func (_c *MockPromotionRepository_Delete_Call) RunAndReturn(run func(context.Context, int) error) *MockPromotionRepository_Delete_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockPromotionRepository creates a new instance of MockPromotionRepository. It also registers a cleanup function to assert the mocks expectations.
func NewMockPromotionRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPromotionRepository {
	m := &MockPromotionRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

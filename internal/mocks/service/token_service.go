package service

import (
	"develfood/internal/domain/service"

	mock "github.com/stretchr/testify/mock"
)

// MockTokenService is a testify mock of the TokenService interface.
type MockTokenService struct {
	mock.Mock
}

type MockTokenService_Expecter struct {
	mock *mock.Mock
}

func (_m *MockTokenService) EXPECT() *MockTokenService_Expecter {
	return &MockTokenService_Expecter{mock: &_m.Mock}
}

// Issue provides a mock function for the type MockTokenService
func (_m *MockTokenService) Issue(email string, id int) (string, error) {
	ret := _m.Called(email, id)

	if len(ret) == 0 {
		panic("no return value specified for Issue")
	}

	var r0 string
	var r1 error
	if rf, ok := ret.Get(0).(func(string, int) (string, error)); ok {
		return rf(email, id)
	}
	if rf, ok := ret.Get(0).(func(string, int) string); ok {
		r0 = rf(email, id)
	} else {
		r0 = ret.Get(0).(string)
	}

	if rf, ok := ret.Get(1).(func(string, int) error); ok {
		r1 = rf(email, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_Issue_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Issue'
type MockTokenService_Issue_Call struct {
	*mock.Call
}

// Issue is a helper method to define mock.On call
func (_e *MockTokenService_Expecter) Issue(email interface{}, id interface{}) *MockTokenService_Issue_Call {
	return &MockTokenService_Issue_Call{Call: _e.mock.On("Issue", email, id)}
}

func (_c *MockTokenService_Issue_Call) Run(run func(email string, id int)) *MockTokenService_Issue_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string), args[1].(int))
	})

	return _c
}

func (_c *MockTokenService_Issue_Call) Return(_a0 string, _a1 error) *MockTokenService_Issue_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTokenService_Issue_Call) RunAndReturn(run func(string, int) (string, error)) *MockTokenService_Issue_Call {
	_c.Call.Return(run)

	return _c
}

// Verify provides a mock function for the type MockTokenService
func (_m *MockTokenService) Verify(tokenString string) (*service.Claims, error) {
	ret := _m.Called(tokenString)

	if len(ret) == 0 {
		panic("no return value specified for Verify")
	}

	var r0 *service.Claims
	var r1 error
	if rf, ok := ret.Get(0).(func(string) (*service.Claims, error)); ok {
		return rf(tokenString)
	}
	if rf, ok := ret.Get(0).(func(string) *service.Claims); ok {
		r0 = rf(tokenString)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.Claims)
	}

	if rf, ok := ret.Get(1).(func(string) error); ok {
		r1 = rf(tokenString)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockTokenService_Verify_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Verify'
type MockTokenService_Verify_Call struct {
	*mock.Call
}

// Verify is a helper method to define mock.On call
func (_e *MockTokenService_Expecter) Verify(tokenString interface{}) *MockTokenService_Verify_Call {
	return &MockTokenService_Verify_Call{Call: _e.mock.On("Verify", tokenString)}
}

func (_c *MockTokenService_Verify_Call) Run(run func(tokenString string)) *MockTokenService_Verify_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(string))
	})

	return _c
}

func (_c *MockTokenService_Verify_Call) Return(_a0 *service.Claims, _a1 error) *MockTokenService_Verify_Call {
	_c.Call.Return(_a0, _a1)

	return _c
}

func (_c *MockTokenService_Verify_Call) RunAndReturn(run func(string) (*service.Claims, error)) *MockTokenService_Verify_Call {
	_c.Call.Return(run)

	return _c
}

// NewMockTokenService creates a new instance of MockTokenService. It also registers a cleanup function to assert the mocks expectations.
func NewMockTokenService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTokenService {
	m := &MockTokenService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

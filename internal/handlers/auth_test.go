package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/stretchr/testify/assert"
	"github.com/yukikurage/technotes-api/internal/dto"
)

func (suite *HandlerTestSuite) login(username, password string) *loginResult {
	w := suite.do(http.MethodPost, "/auth/login", map[string]interface{}{
		"username": username,
		"password": password,
	})
	return &loginResult{code: w.Code, cookies: w.Result().Cookies(), body: w.Body.Bytes()}
}

type loginResult struct {
	code    int
	cookies []*http.Cookie
	body    []byte
}

// TestLogin_Success tests the session round trip through /auth/me
func (suite *HandlerTestSuite) TestLogin_Success() {
	user := suite.createUser("alice")

	res := suite.login("ALICE", "secret")
	suite.Require().Equal(http.StatusOK, res.code)
	suite.Require().NotEmpty(res.cookies)

	var loggedIn dto.UserDTO
	suite.Require().NoError(json.Unmarshal(res.body, &loggedIn))
	assert.Equal(suite.T(), user.ID, loggedIn.ID)

	w := suite.doWith(suite.router, http.MethodGet, "/auth/me", nil, res.cookies)
	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var me dto.UserDTO
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &me))
	assert.Equal(suite.T(), "alice", me.Username)
}

// TestLogin_Rejected tests wrong passwords, unknown and inactive users
func (suite *HandlerTestSuite) TestLogin_Rejected() {
	user := suite.createUser("alice")

	assert.Equal(suite.T(), http.StatusUnauthorized, suite.login("alice", "wrong").code)
	assert.Equal(suite.T(), http.StatusUnauthorized, suite.login("nobody", "secret").code)
	assert.Equal(suite.T(), http.StatusBadRequest, suite.login("alice", "").code)

	w := suite.do(http.MethodPatch, "/users", map[string]interface{}{
		"id": user.ID, "username": "alice", "roles": []string{"Employee"}, "active": false,
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	assert.Equal(suite.T(), http.StatusUnauthorized, suite.login("alice", "secret").code)
}

// TestLogin_MalformedBody tests the invalid body message
func (suite *HandlerTestSuite) TestLogin_MalformedBody() {
	w := suite.do(http.MethodPost, "/auth/login", `{"username":`)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Equal(suite.T(), suite.msgs.InvalidRequestBody, suite.message(w))
}

// TestMe_Unauthenticated tests the session guard
func (suite *HandlerTestSuite) TestMe_Unauthenticated() {
	w := suite.do(http.MethodGet, "/auth/me", nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
}

// TestRequireAuth tests that protected resources need a session and accept one
func (suite *HandlerTestSuite) TestRequireAuth() {
	suite.createUser("alice")
	protected := suite.newRouter(false, true)

	w := suite.doWith(protected, http.MethodGet, "/users", nil, nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	res := suite.login("alice", "secret")
	suite.Require().Equal(http.StatusOK, res.code)

	w = suite.doWith(protected, http.MethodGet, "/users", nil, res.cookies)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

// TestLogout tests that the session is cleared
func (suite *HandlerTestSuite) TestLogout() {
	suite.createUser("alice")
	res := suite.login("alice", "secret")
	suite.Require().Equal(http.StatusOK, res.code)

	w := suite.doWith(suite.router, http.MethodPost, "/auth/logout", nil, res.cookies)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), suite.msgs.LoggedOut, suite.message(w))
}

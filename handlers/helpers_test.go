package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"feedline/config"
	"feedline/handlers"
	"feedline/middleware"
	"feedline/models"
	"feedline/routes"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeCollection implements handlers.Collection in memory, capturing the
// filters and updates each handler issues. Query results are built with the
// driver's own test constructors so Decode/All behave exactly as they would
// against a live server.
type fakeCollection struct {
	findOneDoc interface{} // document FindOne yields; nil means ErrNoDocuments
	findOneErr error
	findDocs   []interface{}
	findErr    error
	insertErr  error
	updateRes  *mongo.UpdateResult
	updateErr  error
	deleteErr  error

	lastFilter interface{}
	lastUpdate interface{}
	inserted   []interface{}
}

func (f *fakeCollection) FindOne(_ context.Context, filter interface{}, _ ...*options.FindOneOptions) *mongo.SingleResult {
	f.lastFilter = filter
	if f.findOneErr != nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, f.findOneErr, nil)
	}
	if f.findOneDoc == nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	return mongo.NewSingleResultFromDocument(f.findOneDoc, nil, nil)
}

func (f *fakeCollection) Find(_ context.Context, filter interface{}, _ ...*options.FindOptions) (*mongo.Cursor, error) {
	f.lastFilter = filter
	if f.findErr != nil {
		return nil, f.findErr
	}
	docs := f.findDocs
	if docs == nil {
		docs = []interface{}{}
	}
	return mongo.NewCursorFromDocuments(docs, nil, nil)
}

func (f *fakeCollection) InsertOne(_ context.Context, document interface{}, _ ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, document)
	return &mongo.InsertOneResult{}, nil
}

func (f *fakeCollection) UpdateOne(_ context.Context, filter interface{}, update interface{}, _ ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	f.lastFilter = filter
	f.lastUpdate = update
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if f.updateRes != nil {
		return f.updateRes, nil
	}
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeCollection) DeleteOne(_ context.Context, filter interface{}, _ ...*options.DeleteOptions) (*mongo.DeleteResult, error) {
	f.lastFilter = filter
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

// newTestRouter wires the real router with fake collections and a cookie
// session store, so tests exercise CORS, session, and gate middleware as
// deployed.
func newTestRouter(users, posts *fakeCollection) *gin.Engine {
	cfg := config.Config{ClientURL: "http://localhost:5173", SessionSecret: "test-secret"}
	h := &handlers.Handler{Users: users, Posts: posts}
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	return routes.SetupRouter(cfg, h, store)
}

func doJSON(router *gin.Engine, method, path, body, cookieHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if cookieHeader != "" {
		req.Header.Set("Cookie", cookieHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// loginSession signs in against the fake users collection and returns the
// session cookie for follow-up requests.
func loginSession(t *testing.T, router *gin.Engine, users *fakeCollection, doc interface{}) string {
	t.Helper()
	users.findOneDoc = doc
	w := doJSON(router, http.MethodPost, "/api/login", `{"email":"a@x.com","password":"p"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: status %d body %s", w.Code, w.Body.String())
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("login set no session cookie")
	}
	return cookies[0].Name + "=" + cookies[0].Value
}

// authedContext builds a bare gin context carrying a gate-attached session
// user, for calling protected handlers directly.
func authedContext(body string, user models.SessionUser) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.ContextUserKey, user)
	return c, w
}

package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/Pooja-Gajula/home-made/internal/handlers"
	"github.com/Pooja-Gajula/home-made/internal/notify"
	"github.com/Pooja-Gajula/home-made/internal/routes"
	"github.com/Pooja-Gajula/home-made/internal/session"
	"github.com/Pooja-Gajula/home-made/internal/store"
)

type sentMail struct {
	to, subject, body string
}

type fakeMailer struct {
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendEmail(to, subject, body string) error {
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return f.err
}

type sentPush struct {
	target  notify.Target
	message string
}

type fakePush struct {
	sent []sentPush
	err  error
}

func (f *fakePush) Send(_ context.Context, target notify.Target, message string) error {
	f.sent = append(f.sent, sentPush{target: target, message: message})
	return f.err
}

// testApp wires the full router over sqlmock, miniredis and fake notifiers.
type testApp struct {
	router   *gin.Engine
	mock     sqlmock.Sqlmock
	sessions *session.Store
	mailer   *fakeMailer
	push     *fakePush
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	sessions := session.NewStore(client, []byte("handler-test-secret"))
	mailer := &fakeMailer{}
	push := &fakePush{}

	h := &handlers.Handlers{
		Users:      store.NewUserStore(db),
		Orders:     store.NewOrderStore(db),
		Sessions:   sessions,
		Mailer:     mailer,
		Push:       push,
		OrderTopic: "placed",
	}

	return &testApp{
		router:   routes.SetupRouter(h, sessions),
		mock:     mock,
		sessions: sessions,
		mailer:   mailer,
		push:     push,
	}
}

// seedSession saves the session and returns the signed cookie a browser
// would carry for it.
func (a *testApp) seedSession(t *testing.T, sess *session.Session) *http.Cookie {
	t.Helper()
	require.NoError(t, a.sessions.Save(context.Background(), sess))

	token, err := a.sessions.Token(sess)
	require.NoError(t, err)

	return &http.Cookie{Name: session.CookieName, Value: token}
}

func (a *testApp) do(t *testing.T, method, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// sessionState reloads a session from Redis after one or more requests.
func (a *testApp) sessionState(t *testing.T, id string) *session.Session {
	t.Helper()
	sess, err := a.sessions.Get(context.Background(), id)
	require.NoError(t, err)
	return sess
}

package testserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/curriculum/internal/domain/admin"
	"github.com/rpggio/curriculum/internal/domain/curriculum"
	"github.com/rpggio/curriculum/internal/domain/seedlog"
	"github.com/rpggio/curriculum/internal/mcp"
	"github.com/rpggio/curriculum/internal/sqlite"
	"github.com/rpggio/curriculum/internal/transport"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// TestServer runs the HTTP stack over an in-memory database holding the
// sample curriculum and one admin account.
type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Email    string
	Password string
}

func New(t *testing.T, email, password string) *TestServer {
	t.Helper()
	ctx := context.Background()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	seedLogSvc := seedlog.NewService(sqlite.NewSeedLogRepository(db), nil)
	curriculumSvc := curriculum.NewService(sqlite.NewCurriculumRepository(db), seedLogSvc, nil)
	adminSvc := admin.NewService(sqlite.NewAdminRepository(db), nil).WithCost(bcrypt.MinCost)

	journeys, err := curriculum.BuildSampleCurriculum(curriculum.NewAllocator())
	require.NoError(t, err)
	_, err = curriculumSvc.Seed(ctx, journeys)
	require.NoError(t, err)

	_, _, err = adminSvc.Ensure(ctx, admin.EnsureRequest{Email: email, Password: password})
	require.NoError(t, err)

	mcpServer := mcp.NewServer(mcp.Config{Curriculum: curriculumSvc})
	handler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		nil,
	)
	server := httptest.NewServer(transport.NewServer(handler, transport.AuthMiddleware(adminSvc)))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{
		Server:   server,
		DB:       db,
		Email:    email,
		Password: password,
	}
}

// Connect opens an MCP client session authenticated as the admin.
func (ts *TestServer) Connect(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()

	httpClient := &http.Client{Transport: basicAuth{
		email:    ts.Email,
		password: ts.Password,
		next:     http.DefaultTransport,
	}}
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{
		Endpoint:   ts.Server.URL + "/mcp",
		HTTPClient: httpClient,
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

type basicAuth struct {
	email    string
	password string
	next     http.RoundTripper
}

func (b basicAuth) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.SetBasicAuth(b.email, b.password)
	return b.next.RoundTrip(r)
}

package grpcserver

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/and161185/gatekeeper/internal/authz"
	"github.com/and161185/gatekeeper/internal/errs"
	"github.com/and161185/gatekeeper/internal/metrics"
	"github.com/and161185/gatekeeper/internal/model"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

type fakeAddr struct{}

func (fakeAddr) Network() string { return "tcp" }
func (fakeAddr) String() string  { return "127.0.0.1:12345" }

func TestLoggingUnary_Passthrough(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	ic := LoggingUnary(zap.New(core))

	ctx := peer.NewContext(context.Background(), &peer.Peer{Addr: fakeAddr{}})

	h := func(ctx context.Context, req any) (any, error) { return "ok", nil }
	info := &grpc.UnaryServerInfo{FullMethod: "/gk.Service/Method"}

	resp, err := ic(ctx, "req", info, h)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if s, _ := resp.(string); s != "ok" {
		t.Fatalf("resp mismatch: %v", resp)
	}

	wantErr := status.Error(codes.Internal, "boom")
	hErr := func(ctx context.Context, req any) (any, error) { return nil, wantErr }
	_, err = ic(ctx, "req", info, hErr)
	if !errors.Is(err, wantErr) {
		t.Fatalf("want original error, got: %v", err)
	}

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, zap.InfoLevel, entries[0].Level)
	require.Equal(t, "127.0.0.1:12345", entries[0].ContextMap()["peer"])
	require.Equal(t, zap.WarnLevel, entries[1].Level)
	require.Equal(t, "Internal", entries[1].ContextMap()["code"])
}

func TestRecoverUnary_CatchesPanic(t *testing.T) {
	t.Parallel()

	ic := RecoverUnary(zaptest.NewLogger(t))
	info := &grpc.UnaryServerInfo{FullMethod: "/gk.Service/Panic"}

	panicH := func(ctx context.Context, req any) (any, error) {
		panic("oh no")
	}

	_, err := ic(context.Background(), "req", info, panicH)
	if err == nil {
		t.Fatalf("expected error from panic")
	}
	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Internal {
		t.Fatalf("want codes.Internal, got: %v", err)
	}
}

func TestRecoverUnary_NoPanicPassThrough(t *testing.T) {
	t.Parallel()

	ic := RecoverUnary(zaptest.NewLogger(t))
	info := &grpc.UnaryServerInfo{FullMethod: "/gk.Service/Ok"}

	h := func(ctx context.Context, req any) (any, error) { return 42, nil }

	resp, err := ic(context.Background(), "req", info, h)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if resp.(int) != 42 {
		t.Fatalf("resp mismatch: %v", resp)
	}
}

func TestMetricsUnary_ObservesCode(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	ic := MetricsUnary(m)
	info := &grpc.UnaryServerInfo{FullMethod: "/" + ServiceName + "/Login"}

	_, _ = ic(context.Background(), nil, info, func(context.Context, any) (any, error) { return nil, nil })
	_, _ = ic(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.Unauthenticated, "x")
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `gatekeeper_rpc_duration_seconds_count{code="OK",method="/gatekeeper.v1.Identity/Login"} 1`)
	require.Contains(t, string(body), `gatekeeper_rpc_duration_seconds_count{code="Unauthenticated",method="/gatekeeper.v1.Identity/Login"} 1`)
}

func Test_bearerTokenFromMD_OkAndErrors(t *testing.T) {
	t.Parallel()

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer abc.def.ghi"))
	got, err := bearerTokenFromMD(ctx)
	if err != nil || got != "abc.def.ghi" {
		t.Fatalf("ok: got=%q err=%v", got, err)
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Basic foo"))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error on non-bearer")
	}

	ctx = metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer   "))
	if _, err := bearerTokenFromMD(ctx); err == nil {
		t.Fatalf("want error on empty token")
	}

	if _, err := bearerTokenFromMD(context.Background()); err == nil {
		t.Fatalf("want error on no metadata")
	}
}

type stubAuthn struct {
	principals map[string]authz.Principal
	err        error
}

func (s stubAuthn) Authenticate(_ context.Context, tok string) (authz.Principal, error) {
	if s.err != nil {
		return authz.Principal{}, s.err
	}
	p, ok := s.principals[tok]
	if !ok {
		return authz.Principal{}, errs.ErrUnauthenticated
	}
	return p, nil
}

func ctxAuth(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(),
		metadata.Pairs("authorization", "Bearer "+token))
}

func TestAuthUnary(t *testing.T) {
	t.Parallel()

	plain := authz.NewPrincipal(model.User{ID: uuid.Must(uuid.NewV4()), IsActive: true}, []model.Role{{
		Name: authz.RoleUser, IsActive: true,
		Permissions: []model.Permission{{Code: authz.UserRead, IsActive: true}},
	}})
	root := authz.NewPrincipal(model.User{ID: uuid.Must(uuid.NewV4()), IsActive: true, IsSuperuser: true}, nil)
	ic := AuthUnary(stubAuthn{principals: map[string]authz.Principal{"plain": plain, "root": root}}, Rules())

	var seen authz.Principal
	next := func(ctx context.Context, _ any) (any, error) {
		seen, _ = PrincipalFromCtx(ctx)
		return "ok", nil
	}
	call := func(ctx context.Context, method string) codes.Code {
		_, err := ic(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/" + ServiceName + "/" + method}, next)
		return status.Code(err)
	}

	require.Equal(t, codes.OK, call(context.Background(), "Login"))
	require.Equal(t, codes.Unauthenticated, call(context.Background(), "Me"))
	require.Equal(t, codes.Unauthenticated, call(ctxAuth("forged"), "Me"))

	require.Equal(t, codes.OK, call(ctxAuth("plain"), "Me"))
	require.Equal(t, plain.User.ID, seen.User.ID)
	require.Equal(t, codes.PermissionDenied, call(ctxAuth("plain"), "ListEmailConfigs"))

	require.Equal(t, codes.OK, call(ctxAuth("root"), "ListEmailConfigs"))
	require.Equal(t, root.User.ID, seen.User.ID)

	require.Equal(t, codes.PermissionDenied, call(ctxAuth("root"), "Undeclared"))

	_, err := ic(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}, next)
	require.NoError(t, err)
}

func TestAuthUnary_StoreErrorIsInternal(t *testing.T) {
	t.Parallel()

	ic := AuthUnary(stubAuthn{err: errors.New("db down")}, Rules())
	_, err := ic(ctxAuth("any"), nil, &grpc.UnaryServerInfo{FullMethod: "/" + ServiceName + "/Me"},
		func(context.Context, any) (any, error) { return nil, nil })
	require.Equal(t, codes.Internal, status.Code(err))
	require.NotContains(t, err.Error(), "db down")
}

func TestLoggingUnary_DurationFieldDoesNotBlock(t *testing.T) {
	t.Parallel()

	ic := LoggingUnary(zaptest.NewLogger(t))
	info := &grpc.UnaryServerInfo{FullMethod: "/gk.Service/Sleep"}
	h := func(ctx context.Context, req any) (any, error) {
		time.Sleep(5 * time.Millisecond)
		return "done", nil
	}

	start := time.Now()
	resp, err := ic(context.Background(), "req", info, h)
	if err != nil || resp.(string) != "done" {
		t.Fatalf("unexpected result: %v, %v", resp, err)
	}
	if time.Since(start) < 5*time.Millisecond {
		t.Fatalf("duration should reflect handler time")
	}
}

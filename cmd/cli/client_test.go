package main

import (
	"context"
	"net"
	"testing"

	pb "github.com/and161185/gatekeeper/gen/go/gatekeeper/v1"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

// stubIdentity answers the handful of methods the client tests call.
type stubIdentity struct {
	pb.UnimplementedIdentityServer
	gotAuth string
	gotRef  string
}

func (s *stubIdentity) Login(_ context.Context, req *pb.LoginRequest) (*pb.TokenResponse, error) {
	if req.GetPassword() != "pw" {
		return nil, status.Error(codes.Unauthenticated, "incorrect username or password")
	}
	return &pb.TokenResponse{AccessToken: "a1", RefreshToken: "r1", TokenType: "bearer", ExpiresIn: 1800}, nil
}

func (s *stubIdentity) Refresh(_ context.Context, req *pb.RefreshRequest) (*pb.TokenResponse, error) {
	return &pb.TokenResponse{AccessToken: "a2", RefreshToken: req.GetRefreshToken() + "'"}, nil
}

func (s *stubIdentity) Me(ctx context.Context, _ *emptypb.Empty) (*pb.MeResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	if v := md.Get("authorization"); len(v) > 0 {
		s.gotAuth = v[0]
	}
	return &pb.MeResponse{User: &pb.User{Username: "admin"}, Permissions: []string{"user.read"}}, nil
}

func (s *stubIdentity) ListEmailPresets(context.Context, *emptypb.Empty) (*pb.EmailPresetList, error) {
	return &pb.EmailPresetList{Presets: []*pb.EmailPreset{{Name: "Gmail", SmtpPort: 587}}}, nil
}

func (s *stubIdentity) ActivateEmailConfig(_ context.Context, req *pb.EmailConfigRef) (*pb.EmailConfig, error) {
	s.gotRef = req.GetId()
	return &pb.EmailConfig{Id: req.GetId(), IsActive: true}, nil
}

func startStub(t *testing.T, impl *stubIdentity) *bufconn.Listener {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer()
	pb.RegisterIdentityServer(gs, impl)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(func() { gs.Stop(); _ = lis.Close() })
	return lis
}

func dialStub(t *testing.T, lis *bufconn.Listener, bearer string) pb.IdentityClient {
	t.Helper()
	opts := []grpc.DialOption{
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) { return lis.Dial() }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if bearer != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: bearer}))
	}
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	cc, err := grpc.DialContext(context.Background(), "bufnet", opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cc.Close() })
	return pb.NewIdentityClient(cc)
}

func TestIdentityClient_RoundTrip(t *testing.T) {
	t.Parallel()
	impl := &stubIdentity{}
	lis := startStub(t, impl)
	ctx := context.Background()

	cli := dialStub(t, lis, "")
	tok, err := cli.Login(ctx, &pb.LoginRequest{Username: "admin", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, "a1", tok.GetAccessToken())
	require.EqualValues(t, 1800, tok.GetExpiresIn())

	_, err = cli.Login(ctx, &pb.LoginRequest{Username: "admin", Password: "bad"})
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	next, err := cli.Refresh(ctx, &pb.RefreshRequest{RefreshToken: tok.GetRefreshToken()})
	require.NoError(t, err)
	require.Equal(t, "r1'", next.GetRefreshToken())

	authed := dialStub(t, lis, next.GetAccessToken())
	me, err := authed.Me(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Equal(t, "admin", me.GetUser().GetUsername())
	require.Equal(t, "Bearer a2", impl.gotAuth)
}

func TestEmailCall_Run(t *testing.T) {
	t.Parallel()
	impl := &stubIdentity{}
	cli := dialStub(t, startStub(t, impl), "a1")
	ctx := context.Background()

	call, err := emailRequest([]string{"presets"})
	require.NoError(t, err)
	out, err := call.run(ctx, cli)
	require.NoError(t, err)
	presets := out.(*pb.EmailPresetList).GetPresets()
	require.Equal(t, "Gmail", presets[0].GetName())

	call, err = emailRequest([]string{"activate", "-id", "c-1"})
	require.NoError(t, err)
	out, err = call.run(ctx, cli)
	require.NoError(t, err)
	require.True(t, out.(*pb.EmailConfig).GetIsActive())
	require.Equal(t, "c-1", impl.gotRef)

	call, err = emailRequest([]string{"rm", "-id", "c-1"})
	require.NoError(t, err)
	_, err = call.run(ctx, cli)
	require.Equal(t, codes.Unimplemented, status.Code(err))

	_, err = emailCall{method: "Nope"}.run(ctx, cli)
	require.Error(t, err)
}

// Package grpcserver exposes the Gatekeeper identity API over gRPC.
package grpcserver

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	pb "github.com/and161185/gatekeeper/gen/go/gatekeeper/v1"
	"github.com/and161185/gatekeeper/internal/authz"
	"github.com/and161185/gatekeeper/internal/convert"
	"github.com/and161185/gatekeeper/internal/errs"
	"github.com/and161185/gatekeeper/internal/model"
	"github.com/and161185/gatekeeper/internal/service"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "gatekeeper.v1.Identity"

const (
	msgBadCredentials = "incorrect username or password"
	msgForgotSent     = "if the email exists, a password reset link has been sent"
	msgResetDone      = "password has been reset successfully"
	msgChanged        = "password changed successfully"
	msgLoggedOut      = "successfully logged out"
)

// Rule states what a method requires from the caller. The zero value
// requires an authenticated principal.
type Rule struct {
	Public     bool
	Permission string
}

// Rules maps full method names of the Identity service to their access rule.
func Rules() map[string]Rule {
	manage := Rule{Permission: authz.EmailConfigManage}
	return map[string]Rule{
		pb.Identity_Login_FullMethodName:          {Public: true},
		pb.Identity_Refresh_FullMethodName:        {Public: true},
		pb.Identity_ForgotPassword_FullMethodName: {Public: true},
		pb.Identity_ResetPassword_FullMethodName:  {Public: true},
		pb.Identity_Logout_FullMethodName:         {},
		pb.Identity_ChangePassword_FullMethodName: {},
		pb.Identity_Me_FullMethodName:             {},

		pb.Identity_ListEmailConfigs_FullMethodName:     manage,
		pb.Identity_GetEmailConfig_FullMethodName:       manage,
		pb.Identity_GetActiveEmailConfig_FullMethodName: manage,
		pb.Identity_CreateEmailConfig_FullMethodName:    manage,
		pb.Identity_UpdateEmailConfig_FullMethodName:    manage,
		pb.Identity_DeleteEmailConfig_FullMethodName:    manage,
		pb.Identity_ActivateEmailConfig_FullMethodName:  manage,
		pb.Identity_TestEmailConfig_FullMethodName:      manage,
		pb.Identity_ListEmailPresets_FullMethodName:     manage,
	}
}

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedIdentityServer

	auth    service.AuthService
	configs service.EmailConfigService
	log     *zap.Logger
	now     func() time.Time
}

var _ pb.IdentityServer = (*Server)(nil)

// New constructs a gRPC server with injected services.
func New(auth service.AuthService, configs service.EmailConfigService, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{auth: auth, configs: configs, log: log, now: time.Now}
}

// Register attaches the Identity service to r.
func (s *Server) Register(r grpc.ServiceRegistrar) { pb.RegisterIdentityServer(r, s) }

// --- Auth ---

// Login exchanges credentials for a token pair.
func (s *Server) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenResponse, error) {
	if req.GetUsername() == "" || req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty username/password")
	}
	tok, err := s.auth.Login(ctx, req.GetUsername(), req.GetPassword(), remoteIP(ctx))
	if err != nil {
		if errors.Is(err, errs.ErrUnauthenticated) {
			return nil, status.Error(codes.Unauthenticated, msgBadCredentials)
		}
		return nil, s.toStatus(ctx, "login", err)
	}
	return convert.ToProtoTokens(tok, s.now()), nil
}

// Refresh rotates a refresh token into a new pair.
func (s *Server) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.TokenResponse, error) {
	if req.GetRefreshToken() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty refresh_token")
	}
	tok, err := s.auth.Refresh(ctx, req.GetRefreshToken())
	if err != nil {
		return nil, s.toStatus(ctx, "refresh", err)
	}
	return convert.ToProtoTokens(tok, s.now()), nil
}

// ForgotPassword answers identically whether or not the address is known.
func (s *Server) ForgotPassword(ctx context.Context, req *pb.ForgotPasswordRequest) (*pb.MessageResponse, error) {
	if strings.TrimSpace(req.GetEmail()) == "" {
		return nil, status.Error(codes.InvalidArgument, "empty email")
	}
	if err := s.auth.ForgotPassword(ctx, req.GetEmail()); err != nil {
		return nil, s.toStatus(ctx, "forgot password", err)
	}
	return &pb.MessageResponse{Message: msgForgotSent}, nil
}

// ResetPassword consumes a reset token.
func (s *Server) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.MessageResponse, error) {
	if req.GetToken() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty token")
	}
	err := s.auth.ResetPassword(ctx, req.GetToken(), req.GetNewPassword())
	if errors.Is(err, errs.ErrInvalidToken) {
		return nil, status.Error(codes.InvalidArgument, "invalid or expired reset token")
	}
	if err != nil {
		return nil, s.toStatus(ctx, "reset password", err)
	}
	return &pb.MessageResponse{Message: msgResetDone}, nil
}

// Logout revokes the caller's refresh token.
func (s *Server) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.MessageResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.auth.Logout(ctx, req.GetRefreshToken(), p.User.ID); err != nil {
		return nil, s.toStatus(ctx, "logout", err)
	}
	return &pb.MessageResponse{Message: msgLoggedOut}, nil
}

// ChangePassword replaces the caller's password after verifying the current one.
func (s *Server) ChangePassword(ctx context.Context, req *pb.ChangePasswordRequest) (*pb.MessageResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.auth.ChangePassword(ctx, p.User.ID, req.GetCurrentPassword(), req.GetNewPassword()); err != nil {
		return nil, s.toStatus(ctx, "change password", err)
	}
	return &pb.MessageResponse{Message: msgChanged}, nil
}

// Me describes the caller.
func (s *Server) Me(ctx context.Context, _ *emptypb.Empty) (*pb.MeResponse, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	return convert.ToProtoMe(p), nil
}

// --- Email configs ---

// ListEmailConfigs returns every stored profile, newest first.
func (s *Server) ListEmailConfigs(ctx context.Context, _ *emptypb.Empty) (*pb.EmailConfigList, error) {
	list, err := s.configs.List(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, "list email configs", err)
	}
	return convert.ToProtoEmailConfigs(list), nil
}

// GetEmailConfig returns one profile by id.
func (s *Server) GetEmailConfig(ctx context.Context, req *pb.EmailConfigRef) (*pb.EmailConfig, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	return s.configReply(ctx, "get email config")(s.configs.Get(ctx, id))
}

// GetActiveEmailConfig returns the profile used for outgoing mail.
func (s *Server) GetActiveEmailConfig(ctx context.Context, _ *emptypb.Empty) (*pb.EmailConfig, error) {
	return s.configReply(ctx, "active email config")(s.configs.Active(ctx))
}

// CreateEmailConfig stores a new profile; an active one demotes the previous active row.
func (s *Server) CreateEmailConfig(ctx context.Context, req *pb.CreateEmailConfigRequest) (*pb.EmailConfig, error) {
	return s.configReply(ctx, "create email config")(s.configs.Create(ctx, convert.FromProtoCreateEmailConfig(req)))
}

// UpdateEmailConfig applies the fields present in the request.
func (s *Server) UpdateEmailConfig(ctx context.Context, req *pb.UpdateEmailConfigRequest) (*pb.EmailConfig, error) {
	id, upd, err := convert.FromProtoUpdateEmailConfig(req)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad id")
	}
	return s.configReply(ctx, "update email config")(s.configs.Update(ctx, id, upd))
}

// DeleteEmailConfig removes a profile.
func (s *Server) DeleteEmailConfig(ctx context.Context, req *pb.EmailConfigRef) (*pb.MessageResponse, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	if err := s.configs.Delete(ctx, id); err != nil {
		return nil, s.toStatus(ctx, "delete email config", err)
	}
	return &pb.MessageResponse{Message: "email config deleted"}, nil
}

// ActivateEmailConfig makes one profile the single active row.
func (s *Server) ActivateEmailConfig(ctx context.Context, req *pb.EmailConfigRef) (*pb.EmailConfig, error) {
	id, err := parseID(req.GetId())
	if err != nil {
		return nil, err
	}
	return s.configReply(ctx, "activate email config")(s.configs.Activate(ctx, id))
}

// TestEmailConfig sends a test message through the active profile and
// surfaces delivery failures to the administrator.
func (s *Server) TestEmailConfig(ctx context.Context, req *pb.TestEmailRequest) (*pb.MessageResponse, error) {
	if err := s.configs.SendTest(ctx, req.GetRecipient()); err != nil {
		if errors.Is(err, errs.ErrDeliveryFailed) {
			return nil, status.Error(codes.Unavailable, err.Error())
		}
		return nil, s.toStatus(ctx, "test email", err)
	}
	return &pb.MessageResponse{Message: "test email sent to " + req.GetRecipient()}, nil
}

// ListEmailPresets returns suggested settings for well-known providers.
func (s *Server) ListEmailPresets(context.Context, *emptypb.Empty) (*pb.EmailPresetList, error) {
	return convert.ToProtoEmailPresets(s.configs.Presets()), nil
}

func (s *Server) configReply(ctx context.Context, op string) func(*model.EmailConfig, error) (*pb.EmailConfig, error) {
	return func(c *model.EmailConfig, err error) (*pb.EmailConfig, error) {
		if err != nil {
			return nil, s.toStatus(ctx, op, err)
		}
		return convert.ToProtoEmailConfig(*c), nil
	}
}

// toStatus maps domain errors to gRPC status. Unexpected errors are logged
// and reported without detail.
func (s *Server) toStatus(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, errs.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "could not validate credentials")
	case errors.Is(err, errs.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "invalid or expired token")
	case errors.Is(err, errs.ErrWrongPassword):
		return status.Error(codes.InvalidArgument, "incorrect password")
	case errors.Is(err, errs.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return status.Error(codes.PermissionDenied, "not enough permissions")
	case errors.Is(err, errs.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, errs.ErrConflict):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, errs.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, "too many failed attempts, try again later")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	}
	s.log.Error("request failed", zap.String("op", op), zap.Error(err))
	return status.Error(codes.Internal, "internal error")
}

func principal(ctx context.Context) (authz.Principal, error) {
	p, ok := PrincipalFromCtx(ctx)
	if !ok {
		return authz.Principal{}, status.Error(codes.Unauthenticated, "no auth")
	}
	return p, nil
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := convert.ParseID(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "bad id")
	}
	return id, nil
}

// remoteIP returns the peer host without the ephemeral port.
func remoteIP(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

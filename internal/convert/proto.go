// Package convert maps domain values to and from Identity protobuf messages.
package convert

import (
	"fmt"
	"time"

	pb "github.com/and161185/gatekeeper/gen/go/gatekeeper/v1"
	"github.com/and161185/gatekeeper/internal/authz"
	model "github.com/and161185/gatekeeper/internal/model"
	u "github.com/gofrs/uuid/v5"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// TokenType is the scheme clients put in front of the access token.
const TokenType = "bearer"

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func intPtr(p *int32) *int {
	if p == nil {
		return nil
	}
	v := int(*p)
	return &v
}

// ParseID parses a UUID carried as text in a request.
func ParseID(raw string) (u.UUID, error) {
	var id u.UUID
	if err := id.UnmarshalText([]byte(raw)); err != nil {
		return u.Nil, fmt.Errorf("invalid id: %w", err)
	}
	return id, nil
}

// --- Auth (server -> client) ---

// ToProtoTokens converts an issued pair. ExpiresIn is counted from now in whole seconds.
func ToProtoTokens(t model.Tokens, now time.Time) *pb.TokenResponse {
	return &pb.TokenResponse{
		AccessToken:      t.AccessToken,
		RefreshToken:     t.RefreshToken,
		TokenType:        TokenType,
		ExpiresIn:        int64(t.AccessExpiresAt.Sub(now).Round(time.Second) / time.Second),
		RefreshExpiresAt: ts(t.RefreshExpiresAt),
	}
}

// ToProtoUser converts a user without its password digest.
func ToProtoUser(usr model.User) *pb.User {
	return &pb.User{
		Id:          usr.ID.String(),
		Email:       usr.Email,
		Username:    usr.Username,
		FirstName:   usr.FirstName,
		LastName:    usr.LastName,
		IsActive:    usr.IsActive,
		IsSuperuser: usr.IsSuperuser,
		CreatedAt:   ts(usr.CreatedAt),
	}
}

// ToProtoMe describes a principal: active role names and effective permission codes.
func ToProtoMe(p authz.Principal) *pb.MeResponse {
	roles := make([]string, 0, len(p.Roles))
	for _, r := range p.Roles {
		if r.IsActive {
			roles = append(roles, r.Name)
		}
	}
	return &pb.MeResponse{
		User:        ToProtoUser(p.User),
		Roles:       roles,
		Permissions: p.Permissions(),
	}
}

// --- Email configs ---

// ToProtoEmailConfig converts a stored profile. The encrypted password never leaves the server.
func ToProtoEmailConfig(c model.EmailConfig) *pb.EmailConfig {
	return &pb.EmailConfig{
		Id:           c.ID.String(),
		Provider:     c.Provider,
		SmtpHost:     c.SMTPHost,
		SmtpPort:     int32(c.SMTPPort),
		SmtpUsername: c.SMTPUsername,
		SenderEmail:  c.SenderEmail,
		SenderName:   c.SenderName,
		UseTls:       c.UseTLS,
		UseSsl:       c.UseSSL,
		IsActive:     c.IsActive,
		CreatedAt:    ts(c.CreatedAt),
		UpdatedAt:    ts(c.UpdatedAt),
	}
}

// ToProtoEmailConfigs converts a slice of profiles into a list message.
func ToProtoEmailConfigs(cs []model.EmailConfig) *pb.EmailConfigList {
	out := &pb.EmailConfigList{Configs: make([]*pb.EmailConfig, 0, len(cs))}
	for _, c := range cs {
		out.Configs = append(out.Configs, ToProtoEmailConfig(c))
	}
	return out
}

// FromProtoCreateEmailConfig converts a create request to the plaintext service input.
func FromProtoCreateEmailConfig(in *pb.CreateEmailConfigRequest) model.EmailConfigInput {
	return model.EmailConfigInput{
		Provider:     in.GetProvider(),
		SMTPHost:     in.GetSmtpHost(),
		SMTPPort:     int(in.GetSmtpPort()),
		SMTPUsername: in.GetSmtpUsername(),
		SMTPPassword: in.GetSmtpPassword(),
		SenderEmail:  in.GetSenderEmail(),
		SenderName:   in.GetSenderName(),
		UseTLS:       in.GetUseTls(),
		UseSSL:       in.GetUseSsl(),
		IsActive:     in.GetIsActive(),
	}
}

// FromProtoUpdateEmailConfig converts a partial update. Unset optional fields stay nil.
func FromProtoUpdateEmailConfig(in *pb.UpdateEmailConfigRequest) (u.UUID, model.EmailConfigUpdate, error) {
	if in == nil {
		return u.Nil, model.EmailConfigUpdate{}, fmt.Errorf("nil UpdateEmailConfigRequest")
	}
	id, err := ParseID(in.GetId())
	if err != nil {
		return u.Nil, model.EmailConfigUpdate{}, err
	}
	return id, model.EmailConfigUpdate{
		Provider:     in.Provider,
		SMTPHost:     in.SmtpHost,
		SMTPPort:     intPtr(in.SmtpPort),
		SMTPUsername: in.SmtpUsername,
		SMTPPassword: in.SmtpPassword,
		SenderEmail:  in.SenderEmail,
		SenderName:   in.SenderName,
		UseTLS:       in.UseTls,
		UseSSL:       in.UseSsl,
		IsActive:     in.IsActive,
	}, nil
}

// ToProtoEmailPresets converts the provider preset catalogue.
func ToProtoEmailPresets(ps []model.EmailPreset) *pb.EmailPresetList {
	out := &pb.EmailPresetList{Presets: make([]*pb.EmailPreset, 0, len(ps))}
	for _, p := range ps {
		out.Presets = append(out.Presets, &pb.EmailPreset{
			Name:         p.Name,
			SmtpHost:     p.SMTPHost,
			SmtpPort:     int32(p.SMTPPort),
			UseTls:       p.UseTLS,
			UseSsl:       p.UseSSL,
			Instructions: p.Instructions,
		})
	}
	return out
}

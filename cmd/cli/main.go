// Command gk is a CLI client for the Gatekeeper identity service.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	pb "github.com/and161185/gatekeeper/gen/go/gatekeeper/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	insecurecreds "google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// ---- config/token store ----

type tokenFile struct {
	AccessToken      string    `json:"access_token"`
	ExpiresAt        time.Time `json:"expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "gatekeeper")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "gatekeeper")
}

func tokenPath() string { return filepath.Join(cfgDir(), "token.json") }

func saveTokens(resp *pb.TokenResponse, now time.Time) error {
	if err := os.MkdirAll(cfgDir(), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(tokenPath(), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenFile{
		AccessToken:      resp.GetAccessToken(),
		ExpiresAt:        now.Add(time.Duration(resp.GetExpiresIn()) * time.Second),
		RefreshToken:     resp.GetRefreshToken(),
		RefreshExpiresAt: asTime(resp.GetRefreshExpiresAt()),
	})
}

func readTokens() (tokenFile, error) {
	var tf tokenFile
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return tf, err
	}
	err = json.Unmarshal(b, &tf)
	return tf, err
}

// loadToken returns a live access token.
func loadToken() (string, error) {
	tf, err := readTokens()
	if err != nil {
		return "", err
	}
	if tf.AccessToken == "" || time.Now().After(tf.ExpiresAt) {
		return "", errors.New("no valid token (run login or refresh)")
	}
	return tf.AccessToken, nil
}

// loadRefreshToken returns the stored refresh token; the server decides whether it is still valid.
func loadRefreshToken() (string, error) {
	tf, err := readTokens()
	if err != nil {
		return "", err
	}
	if tf.RefreshToken == "" {
		return "", errors.New("no refresh token (login required)")
	}
	return tf.RefreshToken, nil
}

func clearTokens() error {
	err := os.Remove(tokenPath())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// ---- grpc dial ----

type bearerCreds struct {
	token  string
	secure bool
}

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return b.secure }

func loadTLS(caPath string, insecure bool) (credentials.TransportCredentials, error) {
	if insecure {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil //nolint:gosec // dev only
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

type dialOpts struct {
	addr      string
	caPath    string
	insecure  bool
	plaintext bool
}

func dial(ctx context.Context, o dialOpts, bearer string) (*grpc.ClientConn, pb.IdentityClient, error) {
	var creds credentials.TransportCredentials
	if o.plaintext {
		creds = insecurecreds.NewCredentials()
	} else {
		c, err := loadTLS(o.caPath, o.insecure)
		if err != nil {
			return nil, nil, err
		}
		creds = c
	}
	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if bearer != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: bearer, secure: !o.plaintext}))
	}
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	cc, err := grpc.DialContext(ctx, o.addr, opts...)
	if err != nil {
		return nil, nil, err
	}
	return cc, pb.NewIdentityClient(cc), nil
}

// ---- utils ----

func asTime(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

var printOpts = protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}

func printProto(m proto.Message) {
	b, err := printOpts.Marshal(m)
	if err != nil {
		fail(err)
	}
	fmt.Println(string(b))
}

func fail(err error) {
	if st, ok := status.FromError(err); ok {
		fmt.Fprintf(os.Stderr, "error: %s: %s\n", st.Code(), st.Message())
	} else {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(1)
}

func need(fs *flag.FlagSet, vals ...*string) {
	for _, v := range vals {
		if strings.TrimSpace(*v) == "" {
			fs.Usage()
			os.Exit(1)
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `gk CLI
Usage:
  gk -addr HOST:PORT [-cacert file | -insecure | -plaintext] <cmd> [args]

Commands:
  version
  login    -u <username> -p <password>          (saves tokens)
  refresh                                       (rotates the saved refresh token)
  logout
  me
  forgot   -email <address>
  reset    -token <token> -p <new password>
  passwd   -old <current> -new <new password>
  email    list | get -id <uuid> | active | presets
           create -file <json> | update -id <uuid> -file <json>
           activate -id <uuid> | rm -id <uuid> | test -to <address>
`)
	os.Exit(2)
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

// main dispatches subcommands and configures TLS/auth for RPC calls.
func main() {
	// global flags
	addr := flag.String("addr", "localhost:8443", "server addr")
	caPath := flag.String("cacert", "", "CA cert (PEM)")
	insecure := flag.Bool("insecure", false, "skip cert verify (dev)")
	plaintext := flag.Bool("plaintext", false, "connect without TLS (dev)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd, args := flag.Arg(0), flag.Args()[1:]
	o := dialOpts{addr: *addr, caPath: *caPath, insecure: *insecure, plaintext: *plaintext}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cmd {
	case "version":
		fmt.Printf("gk %s (%s)\n", version, buildDate)

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		u := fs.String("u", "", "username")
		p := fs.String("p", "", "password")
		_ = fs.Parse(args)
		need(fs, u, p)

		cc, cli, err := dial(ctx, o, "")
		if err != nil {
			fail(err)
		}
		defer cc.Close()
		resp, err := cli.Login(ctx, &pb.LoginRequest{Username: *u, Password: *p})
		if err != nil {
			fail(err)
		}
		if err := saveTokens(resp, time.Now()); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "refresh":
		rt, err := loadRefreshToken()
		if err != nil {
			fail(err)
		}
		cc, cli, err := dial(ctx, o, "")
		if err != nil {
			fail(err)
		}
		defer cc.Close()
		resp, err := cli.Refresh(ctx, &pb.RefreshRequest{RefreshToken: rt})
		if err != nil {
			fail(err)
		}
		if err := saveTokens(resp, time.Now()); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "logout":
		tf, err := readTokens()
		if err != nil {
			fail(err)
		}
		cc, cli, err := dial(ctx, o, tf.AccessToken)
		if err != nil {
			fail(err)
		}
		defer cc.Close()
		if _, err := cli.Logout(ctx, &pb.LogoutRequest{RefreshToken: tf.RefreshToken}); err != nil {
			fail(err)
		}
		if err := clearTokens(); err != nil {
			fail(err)
		}
		fmt.Println("ok")

	case "me":
		runAuthed(ctx, o, func(cli pb.IdentityClient) (proto.Message, error) { return cli.Me(ctx, &emptypb.Empty{}) })

	case "forgot":
		fs := flag.NewFlagSet("forgot", flag.ExitOnError)
		email := fs.String("email", "", "account e-mail")
		_ = fs.Parse(args)
		need(fs, email)
		cc, cli, err := dial(ctx, o, "")
		if err != nil {
			fail(err)
		}
		defer cc.Close()
		resp, err := cli.ForgotPassword(ctx, &pb.ForgotPasswordRequest{Email: *email})
		if err != nil {
			fail(err)
		}
		fmt.Println(resp.GetMessage())

	case "reset":
		fs := flag.NewFlagSet("reset", flag.ExitOnError)
		tok := fs.String("token", "", "reset token from the e-mail link")
		p := fs.String("p", "", "new password")
		_ = fs.Parse(args)
		need(fs, tok, p)
		cc, cli, err := dial(ctx, o, "")
		if err != nil {
			fail(err)
		}
		defer cc.Close()
		resp, err := cli.ResetPassword(ctx, &pb.ResetPasswordRequest{Token: *tok, NewPassword: *p})
		if err != nil {
			fail(err)
		}
		fmt.Println(resp.GetMessage())

	case "passwd":
		fs := flag.NewFlagSet("passwd", flag.ExitOnError)
		cur := fs.String("old", "", "current password")
		next := fs.String("new", "", "new password")
		_ = fs.Parse(args)
		need(fs, cur, next)
		runAuthed(ctx, o, func(cli pb.IdentityClient) (proto.Message, error) {
			return cli.ChangePassword(ctx, &pb.ChangePasswordRequest{CurrentPassword: *cur, NewPassword: *next})
		})

	case "email":
		call, err := emailRequest(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			usage()
		}
		runAuthed(ctx, o, func(cli pb.IdentityClient) (proto.Message, error) { return call.run(ctx, cli) })

	default:
		usage()
	}
}

func runAuthed(ctx context.Context, o dialOpts, f func(pb.IdentityClient) (proto.Message, error)) {
	token, err := loadToken()
	if err != nil {
		fail(err)
	}
	cc, cli, err := dial(ctx, o, token)
	if err != nil {
		fail(err)
	}
	defer cc.Close()
	out, err := f(cli)
	if err != nil {
		fail(err)
	}
	printProto(out)
}

// emailCall is one parsed "email" subcommand: the RPC to run and its request.
type emailCall struct {
	method string
	req    proto.Message
}

func (c emailCall) run(ctx context.Context, cli pb.IdentityClient) (proto.Message, error) {
	switch c.method {
	case "ListEmailConfigs":
		return cli.ListEmailConfigs(ctx, c.req.(*emptypb.Empty))
	case "GetActiveEmailConfig":
		return cli.GetActiveEmailConfig(ctx, c.req.(*emptypb.Empty))
	case "ListEmailPresets":
		return cli.ListEmailPresets(ctx, c.req.(*emptypb.Empty))
	case "GetEmailConfig":
		return cli.GetEmailConfig(ctx, c.req.(*pb.EmailConfigRef))
	case "ActivateEmailConfig":
		return cli.ActivateEmailConfig(ctx, c.req.(*pb.EmailConfigRef))
	case "DeleteEmailConfig":
		return cli.DeleteEmailConfig(ctx, c.req.(*pb.EmailConfigRef))
	case "TestEmailConfig":
		return cli.TestEmailConfig(ctx, c.req.(*pb.TestEmailRequest))
	case "CreateEmailConfig":
		return cli.CreateEmailConfig(ctx, c.req.(*pb.CreateEmailConfigRequest))
	case "UpdateEmailConfig":
		return cli.UpdateEmailConfig(ctx, c.req.(*pb.UpdateEmailConfigRequest))
	}
	return nil, fmt.Errorf("email: no RPC for %q", c.method)
}

// emailRequest maps "email <sub> [flags]" to an RPC method and its request.
func emailRequest(args []string) (emailCall, error) {
	if len(args) == 0 {
		return emailCall{}, errors.New("email: missing subcommand")
	}
	fs := flag.NewFlagSet("email "+args[0], flag.ContinueOnError)
	id := fs.String("id", "", "config id")
	file := fs.String("file", "", "JSON request body (- for stdin)")
	to := fs.String("to", "", "test recipient")
	if err := fs.Parse(args[1:]); err != nil {
		return emailCall{}, err
	}
	requireID := func(method string) (emailCall, error) {
		if *id == "" {
			return emailCall{}, fmt.Errorf("email %s: -id is required", args[0])
		}
		return emailCall{method, &pb.EmailConfigRef{Id: *id}}, nil
	}

	switch args[0] {
	case "list":
		return emailCall{"ListEmailConfigs", &emptypb.Empty{}}, nil
	case "active":
		return emailCall{"GetActiveEmailConfig", &emptypb.Empty{}}, nil
	case "presets":
		return emailCall{"ListEmailPresets", &emptypb.Empty{}}, nil
	case "get":
		return requireID("GetEmailConfig")
	case "activate":
		return requireID("ActivateEmailConfig")
	case "rm":
		return requireID("DeleteEmailConfig")
	case "test":
		if *to == "" {
			return emailCall{}, errors.New("email test: -to is required")
		}
		return emailCall{"TestEmailConfig", &pb.TestEmailRequest{Recipient: *to}}, nil
	case "create":
		req := &pb.CreateEmailConfigRequest{}
		if err := readJSON(*file, req); err != nil {
			return emailCall{}, err
		}
		return emailCall{"CreateEmailConfig", req}, nil
	case "update":
		req := &pb.UpdateEmailConfigRequest{}
		if err := readJSON(*file, req); err != nil {
			return emailCall{}, err
		}
		if *id != "" {
			req.Id = *id
		}
		if req.GetId() == "" {
			return emailCall{}, errors.New("email update: -id is required")
		}
		return emailCall{"UpdateEmailConfig", req}, nil
	}
	return emailCall{}, fmt.Errorf("email: unknown subcommand %q", args[0])
}

func readAll(p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(p)
}

// readJSON decodes a request body in protobuf JSON form; unknown fields are rejected.
func readJSON(p string, m proto.Message) error {
	if p == "" {
		return errors.New("-file is required")
	}
	b, err := readAll(p)
	if err != nil {
		return err
	}
	return protojson.Unmarshal(b, m)
}

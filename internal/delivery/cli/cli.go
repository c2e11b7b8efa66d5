package cli

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"user-admin-service/internal/delivery/dto"
	"user-admin-service/internal/usecase"
	"user-admin-service/pkg/validator"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Runner is the operator boundary over the user service. It validates and
// hashes input before anything reaches the core; the core itself never
// hashes or verifies passwords.
type Runner struct {
	log         *logrus.Logger
	userUsecase usecase.UserUsecase
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	out         io.Writer
}

func NewRunner(
	log *logrus.Logger,
	userUsecase usecase.UserUsecase,
	authUsecase usecase.AuthUsecase,
	validator *validator.CustomValidator,
) *Runner {
	return &Runner{
		log:         log,
		userUsecase: userUsecase,
		authUsecase: authUsecase,
		validator:   validator,
		out:         os.Stdout,
	}
}

func (r *Runner) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: user-admin-service <add-user|update-user|delete-user|list-users|login> [flags]")
	}

	switch args[0] {
	case "add-user":
		return r.addUser(ctx, args[1:])
	case "update-user":
		return r.updateUser(ctx, args[1:])
	case "delete-user":
		return r.deleteUser(ctx, args[1:])
	case "list-users":
		return r.listUsers(ctx)
	case "login":
		return r.login(ctx, args[1:])
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (r *Runner) addUser(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add-user", flag.ContinueOnError)
	firstname := fs.String("firstname", "", "login username")
	lastname := fs.String("lastname", "", "last name")
	age := fs.Int("age", 0, "age")
	password := fs.String("password", "", "plaintext password, hashed before storage")
	roles := fs.String("roles", "", "comma-separated role fragments, e.g. admin,user")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := &dto.SaveUserRequest{
		Firstname: *firstname,
		Lastname:  *lastname,
		Age:       *age,
		Password:  *password,
		Roles:     splitRoles(*roles),
	}
	if err := r.validateRequest(req); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		r.log.Warnf("Failed to hash password: %+v", err)
		return err
	}
	req.Password = string(hashed)

	user, err := r.userUsecase.AddUser(ctx, req)
	if err != nil {
		return err
	}

	return r.printJSON(user)
}

func (r *Runner) updateUser(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update-user", flag.ContinueOnError)
	id := fs.Int64("id", 0, "user id")
	firstname := fs.String("firstname", "", "login username")
	lastname := fs.String("lastname", "", "last name")
	age := fs.Int("age", 0, "age")
	password := fs.String("password", "", "plaintext password, hashed before storage")
	roles := fs.String("roles", "", "comma-separated role fragments, replaces the current set")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := &dto.SaveUserRequest{
		ID:        *id,
		Firstname: *firstname,
		Lastname:  *lastname,
		Age:       *age,
		Password:  *password,
		Roles:     splitRoles(*roles),
	}
	if err := r.validateRequest(req); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		r.log.Warnf("Failed to hash password: %+v", err)
		return err
	}
	req.Password = string(hashed)

	return r.userUsecase.UpdateUser(ctx, req)
}

func (r *Runner) deleteUser(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete-user", flag.ContinueOnError)
	id := fs.Int64("id", 0, "user id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return r.userUsecase.DeleteUser(ctx, *id)
}

func (r *Runner) listUsers(ctx context.Context) error {
	rows, err := r.userUsecase.ListAllWithRoles(ctx)
	if err != nil {
		return err
	}

	return r.printJSON(rows)
}

func (r *Runner) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	username := fs.String("username", "", "login username")
	password := fs.String("password", "", "password to verify")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := &dto.LoginRequest{Username: *username, Password: *password}
	if err := r.validateRequest(req); err != nil {
		return err
	}

	principal, err := r.authUsecase.Authenticate(ctx, req.Username)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(principal.Password), []byte(req.Password)); err != nil {
		return ErrInvalidCredentials
	}

	return r.printJSON(principal)
}

func (r *Runner) validateRequest(req interface{}) error {
	if err := r.validator.Validate(req); err != nil {
		for field, msg := range r.validator.FormatValidationErrors(err) {
			r.log.Warnf("Invalid %s: %s", field, msg)
		}
		return fmt.Errorf("invalid request: %w", err)
	}
	return nil
}

func (r *Runner) printJSON(v interface{}) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// splitRoles turns "admin, user" into ["admin", "user"], dropping empties.
func splitRoles(s string) []string {
	fragments := make([]string, 0)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			fragments = append(fragments, part)
		}
	}
	return fragments
}

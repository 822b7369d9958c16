// Package provision implements the interactive admin account setup used by
// cmd/provision. Admin accounts cannot be created over HTTP.
package provision

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/desawisata/internal/common"
	"github.com/dmitrijs2005/desawisata/internal/server/models"
)

var ErrPasswordMismatch = errors.New("passwords do not match")

type AdminCreator interface {
	ProvisionAdmin(ctx context.Context, username, email, password string) (*models.User, error)
}

// Run prompts on out for the new admin's username, email and password
// (entered twice), creates the account and reports its id.
func Run(ctx context.Context, svc AdminCreator, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	username, err := GetSimpleText(reader, "Username", out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(reader, "Email", out)
	if err != nil {
		return err
	}

	password, err := GetPassword("Password: ", out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := GetPassword("Repeat password: ", out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if !bytes.Equal(password, confirm) {
		return ErrPasswordMismatch
	}

	user, err := svc.ProvisionAdmin(ctx, username, email, string(password))
	if err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	_, err = fmt.Fprintf(out, "Admin %q <%s> created with id %d\n", user.Username, user.Email, user.ID)
	return err
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/gatherhq/gather/internal/api"
)

// promptLogin collects email and password interactively, skipping fields
// already supplied by flags.
func promptLogin(email, password *string) error {
	var fields []huh.Field
	if *email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Value(email).
			Validate(requireValue("email")))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(password).
			Validate(requireValue("password")))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

// promptRegister collects the registration fields interactively.
func promptRegister(req *api.RegisterRequest) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Username").Value(&req.Username).Validate(requireValue("username")),
			huh.NewInput().Title("Email").Value(&req.Email).Validate(requireValue("email")),
			huh.NewInput().Title("First name").Value(&req.FirstName),
			huh.NewInput().Title("Last name").Value(&req.LastName),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&req.Password).
				Validate(requireValue("password")),
		),
	).Run()
}

func requireValue(name string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

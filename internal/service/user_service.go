package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"acme_dashboard/internal/model"
	"acme_dashboard/internal/repository"
	"acme_dashboard/internal/schema"
	"acme_dashboard/internal/utils"
	"acme_dashboard/internal/viewcache"
)

// CreateUserPath is the view invalidated after a successful user creation.
const CreateUserPath = "/createuser"

// UserService handles the create-user form and the admin user listing.
type UserService interface {
	CreateUser(ctx context.Context, prev *model.UserState, form map[string]string) *model.UserState
	ListUsers(ctx context.Context) ([]model.User, error)
}

type userService struct {
	users repository.UserRepository
	views viewcache.Revalidator
}

// NewUserService creates a new UserService
func NewUserService(users repository.UserRepository, views viewcache.Revalidator) UserService {
	return &userService{users: users, views: views}
}

// CreateUser validates the raw fields, hashes the password and inserts a
// new user. On success the caller stays on the form and renders the
// success string; there is no redirect here, unlike invoice mutations.
func (s *userService) CreateUser(ctx context.Context, prev *model.UserState, form map[string]string) *model.UserState {
	values, fieldErrs := schema.User.Validate(form)
	if fieldErrs != nil {
		return &model.UserState{
			Errors:  fieldErrs,
			Message: "Missing Fields. Failed to Create User.",
		}
	}

	firstname := values.String("firstname")
	lastname := values.String("lastname")

	hashedPassword, err := utils.HashPassword(values.String("password"))
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return &model.UserState{Message: "Database Error: Failed to Create User."}
	}

	user := &model.User{
		FirstName:    firstname,
		LastName:     lastname,
		Name:         firstname + " " + lastname,
		Profile:      values.String("profile"),
		Email:        values.String("email"),
		PasswordHash: hashedPassword,
		CreatedDate:  time.Now().Format("2006-01-02"), // local timezone
	}

	if err := s.users.Create(ctx, user); err != nil {
		// Duplicate email and any other storage failure collapse into the
		// same user-facing message.
		log.Printf("Error creating user: %v", err)
		return &model.UserState{Message: "Database Error: Failed to Create User."}
	}

	s.views.RevalidatePath(CreateUserPath)
	return &model.UserState{Success: "User created successfully, navigate to the login page and login"}
}

// ListUsers returns all users for the admin view
func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

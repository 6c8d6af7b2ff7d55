package wordpress

import (
	"context"
	"fmt"
)

// GetUserMCP fetches one user in the edit context so username, email and
// roles are included.
func (c *Client) GetUserMCP(ctx context.Context, args GetUserArgs) (GetUserResult, error) {
	if err := args.Validate(); err != nil {
		return GetUserResult{Envelope: Fail(err)}, nil
	}
	raw, err := c.users.Get(ctx, args.UserID, editContext())
	if err != nil {
		return GetUserResult{Envelope: Fail(err)}, nil
	}
	user := projectUser(raw)
	return GetUserResult{Envelope: OK(""), User: &user}, nil
}

// ListUsersMCP returns one page of users.
func (c *Client) ListUsersMCP(ctx context.Context, args ListUsersArgs) (ListUsersResult, error) {
	if err := args.Validate(); err != nil {
		return ListUsersResult{Envelope: Fail(err)}, nil
	}
	query := pageQuery(args.PerPage, args.Page, DefaultPerPage)
	query.Set("context", "edit")
	setFilter(query, "search", args.Search)
	setListFilter(query, "roles", args.Roles)

	items, err := c.users.List(ctx, query)
	if err != nil {
		return ListUsersResult{Envelope: Fail(err)}, nil
	}
	users := projectAll(items, projectUserItem)
	return ListUsersResult{Envelope: OK(""), Count: len(users), Users: users}, nil
}

// CreateUserMCP creates a user account.
func (c *Client) CreateUserMCP(ctx context.Context, args CreateUserArgs) (SaveUserResult, error) {
	if err := args.Validate(); err != nil {
		return SaveUserResult{Envelope: Fail(err)}, nil
	}

	fields := Fields{}.
		Set("username", args.Username).
		Set("email", args.Email).
		Set("password", args.Password)
	SetOptional(fields, "name", args.Name)
	SetList(fields, "roles", args.Roles)

	raw, err := c.users.Create(ctx, fields)
	if err != nil {
		return SaveUserResult{Envelope: Fail(err)}, nil
	}
	user := projectUserSummary(raw)
	return SaveUserResult{
		Envelope: OK(fmt.Sprintf("User %q created", user.Username)),
		User:     &user,
	}, nil
}

// UpdateUserMCP sends only the supplied fields.
func (c *Client) UpdateUserMCP(ctx context.Context, args UpdateUserArgs) (SaveUserResult, error) {
	if err := args.Validate(); err != nil {
		return SaveUserResult{Envelope: Fail(err)}, nil
	}

	fields := Fields{}
	SetOptional(fields, "email", args.Email)
	SetOptional(fields, "name", args.Name)
	SetOptional(fields, "password", args.Password)
	SetList(fields, "roles", args.Roles)

	raw, err := c.users.Update(ctx, args.UserID, fields)
	if err != nil {
		return SaveUserResult{Envelope: Fail(err)}, nil
	}
	user := projectUserSummary(raw)
	return SaveUserResult{
		Envelope: OK(fmt.Sprintf("User #%d updated", user.ID)),
		User:     &user,
	}, nil
}

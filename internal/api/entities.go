package api

import (
	"context"
	"fmt"
	"net/url"

	"shelfsmart/internal/domain"
)

// MutateEntity posts an add/edit/delete to the entity's shared endpoint.
// The caller supplies the entity-specific fields; the action discriminator
// is set here. Edit and delete must include the entity's id field.
func (c *Client) MutateEntity(ctx context.Context, kind domain.EntityKind, action domain.Action, fields url.Values) error {
	if fields == nil {
		fields = url.Values{}
	}
	fields.Set("action", string(action))

	c.log.Debugw("mutating entity", "kind", kind, "action", action)
	if err := c.postForm(ctx, kind.Endpoint(), fields, nil); err != nil {
		return fmt.Errorf("%s %s: %w", action, kind, err)
	}
	return nil
}

// DeleteEntity is MutateEntity with just the id field, the shape the delete
// confirmation popup submits.
func (c *Client) DeleteEntity(ctx context.Context, kind domain.EntityKind, id int) error {
	fields := url.Values{}
	fields.Set(kind.IDField(), fmt.Sprintf("%d", id))
	return c.MutateEntity(ctx, kind, domain.ActionDelete, fields)
}

// QuickAddAuthor creates an author with just a name, the minimal record the
// ISBN flow offers for unmatched authors.
func (c *Client) QuickAddAuthor(ctx context.Context, name string) error {
	fields := url.Values{}
	fields.Set("name", name)
	fields.Set("biography", "")
	fields.Set("nationality", "")
	return c.MutateEntity(ctx, domain.KindAuthor, domain.ActionAdd, fields)
}

// QuickAddCategory creates a category from an ISBN lookup result.
func (c *Client) QuickAddCategory(ctx context.Context, name string) error {
	fields := url.Values{}
	fields.Set("category_name", name)
	fields.Set("description", "Added from ISBN validation")
	fields.Set("parent_category_id", "")
	return c.MutateEntity(ctx, domain.KindCategory, domain.ActionAdd, fields)
}

// QuickAddPublisher creates a publisher with just a name.
func (c *Client) QuickAddPublisher(ctx context.Context, name string) error {
	fields := url.Values{}
	fields.Set("publisher_name", name)
	fields.Set("address", "")
	fields.Set("phone", "")
	fields.Set("email", "")
	fields.Set("website", "")
	fields.Set("established_year", "")
	return c.MutateEntity(ctx, domain.KindPublisher, domain.ActionAdd, fields)
}

package predictorapi

import (
	"context"

	"github.com/Winmix713/hekoprot2/internal/domain/admin"
)

func (c *Client) GetSystemStatus(ctx context.Context) (admin.SystemStatus, error) {
	var out admin.SystemStatus
	err := c.call(ctx, "predictorapi.Client.GetSystemStatus", Request{Path: "/admin/system-status"}, &out)
	return out, err
}

func (c *Client) ListUsers(ctx context.Context, filter admin.UserFilter) (admin.UserList, error) {
	var out admin.UserList
	err := c.call(ctx, "predictorapi.Client.ListUsers", Request{
		Path:  "/admin/users",
		Query: filter.Values(),
	}, &out)
	return out, err
}

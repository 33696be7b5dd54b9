package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motorline/dealerdesk-api/pkg/permission"
)

func TestGetPermissionsUnknownRoleReturnsEmptyTree(t *testing.T) {
	svc := NewPermissionService(newFakeMenuPermissionRepo())

	got, err := svc.GetPermissions(context.Background(), "auditor")
	require.NoError(t, err)
	assert.Equal(t, "auditor", got.Role)
	assert.Empty(t, got.Permissions)
}

func TestGetPermissionsRequiresRole(t *testing.T) {
	svc := NewPermissionService(newFakeMenuPermissionRepo())

	_, err := svc.GetPermissions(context.Background(), "")
	require.Error(t, err)
}

func TestUpsertReplacesWholeTree(t *testing.T) {
	svc := NewPermissionService(newFakeMenuPermissionRepo())
	ctx := context.Background()

	_, err := svc.UpsertPermissions(ctx, "staff", permission.Tree{
		"dashboard": permission.Bool(true),
		"reports":   permission.Bool(true),
	})
	require.NoError(t, err)

	// A second upsert replaces the stored tree rather than merging.
	_, err = svc.UpsertPermissions(ctx, "staff", permission.Tree{
		"dashboard": permission.Bool(true),
	})
	require.NoError(t, err)

	got, err := svc.GetPermissions(ctx, "staff")
	require.NoError(t, err)
	assert.True(t, got.Permissions.Allows("dashboard"))
	assert.False(t, got.Permissions.Allows("reports"), "dropped branch no longer grants")
}

func TestAllowsAdminBypassesTree(t *testing.T) {
	svc := NewPermissionService(newFakeMenuPermissionRepo())

	ok, err := svc.Allows(context.Background(), "admin", "anything.at.all")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAllowsMissingRoleDenies(t *testing.T) {
	svc := NewPermissionService(newFakeMenuPermissionRepo())

	ok, err := svc.Allows(context.Background(), "staff", "dashboard")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAllowsWalksNestedTree(t *testing.T) {
	svc := NewPermissionService(newFakeMenuPermissionRepo())
	ctx := context.Background()

	_, err := svc.UpsertPermissions(ctx, "manager", permission.Tree{
		"master": permission.Branch(permission.Tree{
			"customers":  permission.Bool(true),
			"references": permission.Bool(false),
		}),
	})
	require.NoError(t, err)

	ok, err := svc.Allows(ctx, "manager", "master.customers")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.Allows(ctx, "manager", "master.references")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Allows(ctx, "manager", "collections.sales")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListPermissionsDecodesEveryRole(t *testing.T) {
	svc := NewPermissionService(newFakeMenuPermissionRepo())
	ctx := context.Background()

	_, err := svc.UpsertPermissions(ctx, "staff", permission.Tree{"enquiries": permission.Bool(true)})
	require.NoError(t, err)
	_, err = svc.UpsertPermissions(ctx, "manager", permission.Tree{"dashboard": permission.Bool(true)})
	require.NoError(t, err)

	all, err := svc.ListPermissions(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

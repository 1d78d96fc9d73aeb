package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/medsupply/erp-api/internal/roles"
)

func TestUserListFilterOwnerIsUnscoped(t *testing.T) {
	filter := userListFilter(roles.Owner, "", "", "")
	assert.Equal(t, bson.M{"isDeleted": bson.M{"$ne": true}}, filter)
}

func TestUserListFilterOwnerMayNarrowByQuery(t *testing.T) {
	filter := userListFilter(roles.Owner, "", "admin", "42")
	assert.Equal(t, "42", filter["organizationId"])
	assert.Equal(t, "admin", filter["role"])
}

func TestUserListFilterNonOwnerScopedWithoutQuery(t *testing.T) {
	// The caller never volunteers the scope: it comes from their stored
	// organization, and omitting the query param must not widen the list.
	filter := userListFilter(roles.Admin, "42", "admin", "")

	branches, ok := filter["$or"].(bson.A)
	require.True(t, ok, "non-owner filter must be an $or of scope and owners")
	require.Len(t, branches, 2)

	scoped := branches[0].(bson.M)
	assert.Equal(t, "42", scoped["organizationId"])
	assert.Equal(t, "admin", scoped["role"])
	assert.Equal(t, bson.M{"$ne": true}, scoped["isDeleted"])

	owners := branches[1].(bson.M)
	assert.Equal(t, string(roles.Owner), owners["role"])
	_, narrowed := owners["organizationId"]
	assert.False(t, narrowed, "owner records appear regardless of organization")
}

func TestUserListFilterNonOwnerIgnoresQueryParam(t *testing.T) {
	// A non-owner asking for another organization still gets their own.
	filter := userListFilter(roles.Accountant, "42", "", "99")

	branches := filter["$or"].(bson.A)
	scoped := branches[0].(bson.M)
	assert.Equal(t, "42", scoped["organizationId"])
}

func TestUserListFilterNonOwnerWithoutOrganization(t *testing.T) {
	filter := userListFilter(roles.Admin, "", "", "")

	branches := filter["$or"].(bson.A)
	scoped := branches[0].(bson.M)
	assert.Equal(t, bson.M{"$in": bson.A{"", nil}}, scoped["organizationId"])
}

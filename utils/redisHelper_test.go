package utils

import "testing"

type branchScopedThing struct{}

// Store, retrieve and remove must agree on the list key, including the
// global (branchId 0) form, or invalidation misses the cached list.
func TestListCacheKey(t *testing.T) {
	if got := listCacheKey[branchScopedThing](0); got != "branchScopedThingList" {
		t.Errorf("global list key = %q, want %q", got, "branchScopedThingList")
	}
	if got := listCacheKey[branchScopedThing](7); got != "branchScopedThingList:7" {
		t.Errorf("per-branch list key = %q, want %q", got, "branchScopedThingList:7")
	}
}

func TestGetTypeName(t *testing.T) {
	if got := GetTypeName[branchScopedThing](); got != "branchScopedThing" {
		t.Errorf("GetTypeName = %q, want %q", got, "branchScopedThing")
	}
}

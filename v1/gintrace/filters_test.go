package gintrace

import (
	"strings"
	"testing"
)

func TestRouteMatcher_ZeroValueResolvesNil(t *testing.T) {
	var m RouteMatcher
	if m.resolve() != nil {
		t.Error("expected nil match closure for zero matcher")
	}
}

func TestRouteMatcher_EmptyPathSetResolvesNil(t *testing.T) {
	if Routes().resolve() != nil {
		t.Error("expected nil match closure for empty path set")
	}
}

func TestRouteMatcher_AllRoutes(t *testing.T) {
	match := AllRoutes().resolve()
	if match == nil {
		t.Fatal("expected match closure, got nil")
	}
	if !match("/anything", "GET") {
		t.Error("expected AllRoutes to match any path")
	}
	if !match("", "OPTIONS") {
		t.Error("expected AllRoutes to match empty path")
	}
}

func TestRouteMatcher_PathSetIsMethodAgnostic(t *testing.T) {
	match := Routes("/healthz", "/metrics").resolve()
	if match == nil {
		t.Fatal("expected match closure, got nil")
	}
	if !match("/healthz", "GET") {
		t.Error("expected /healthz GET to match")
	}
	if !match("/healthz", "POST") {
		t.Error("expected /healthz POST to match")
	}
	if match("/users", "GET") {
		t.Error("expected /users not to match")
	}
}

func TestRouteMatcher_Predicate(t *testing.T) {
	match := RouteFunc(func(path, method string) bool {
		return method == "OPTIONS" || strings.HasPrefix(path, "/internal/")
	}).resolve()
	if match == nil {
		t.Fatal("expected match closure, got nil")
	}
	if !match("/users", "OPTIONS") {
		t.Error("expected OPTIONS to match")
	}
	if !match("/internal/debug", "GET") {
		t.Error("expected /internal/ prefix to match")
	}
	if match("/users", "GET") {
		t.Error("expected GET /users not to match")
	}
}

func TestRouteMatcher_PredicateReceivesPathAndMethod(t *testing.T) {
	var gotPath, gotMethod string
	match := RouteFunc(func(path, method string) bool {
		gotPath, gotMethod = path, method
		return false
	}).resolve()

	match("/orders", "PUT")

	if gotPath != "/orders" {
		t.Errorf("expected path /orders, got %q", gotPath)
	}
	if gotMethod != "PUT" {
		t.Errorf("expected method PUT, got %q", gotMethod)
	}
}

package config

import (
	"testing"
)

func TestSubstituteEnvVars_Simple(t *testing.T) {
	t.Setenv("TEST_VAR_SIMPLE", "hello")

	content, missing := substituteEnvVars("value = ${TEST_VAR_SIMPLE}")
	if content != "value = hello" {
		t.Errorf("expected 'value = hello', got %q", content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars, got %v", missing)
	}
}

func TestSubstituteEnvVars_Missing(t *testing.T) {
	// t.Setenv cannot unset, so use a name that is never set
	content, missing := substituteEnvVars("value = ${DISCDB_TEST_NONEXISTENT_VAR_12345}")
	if content != "value = ${DISCDB_TEST_NONEXISTENT_VAR_12345}" {
		t.Errorf("expected unchanged, got %q", content)
	}
	if len(missing) != 1 || missing[0] != "DISCDB_TEST_NONEXISTENT_VAR_12345" {
		t.Errorf("expected [DISCDB_TEST_NONEXISTENT_VAR_12345], got %v", missing)
	}
}

func TestSubstituteEnvVars_Default(t *testing.T) {
	// Empty counts as unset for :-
	t.Setenv("UNSET_VAR_DEFAULT", "")

	content, missing := substituteEnvVars("origin = ${UNSET_VAR_DEFAULT:-https://thediscdb.com}")
	if content != "origin = https://thediscdb.com" {
		t.Errorf("expected default origin, got %q", content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars with default, got %v", missing)
	}
}

func TestSubstituteEnvVars_DefaultOverriddenByEnv(t *testing.T) {
	t.Setenv("SET_VAR_OVERRIDE", "from_env")

	content, missing := substituteEnvVars("value = ${SET_VAR_OVERRIDE:-default}")
	if content != "value = from_env" {
		t.Errorf("expected 'value = from_env', got %q", content)
	}
	if len(missing) != 0 {
		t.Errorf("expected no missing vars, got %v", missing)
	}
}

func TestSubstituteEnvVars_RequiredError(t *testing.T) {
	t.Setenv("REQUIRED_VAR_TEST", "")

	content, missing := substituteEnvVars("value = ${REQUIRED_VAR_TEST:?origin is required}")
	if content != "value = ${REQUIRED_VAR_TEST:?origin is required}" {
		t.Errorf("expected unchanged, got %q", content)
	}
	if len(missing) != 1 || missing[0] != "REQUIRED_VAR_TEST: origin is required" {
		t.Errorf("expected error message, got %v", missing)
	}
}

func TestSubstituteEnvVars_Multiple(t *testing.T) {
	t.Setenv("VAR1_MULTI", "one")
	t.Setenv("VAR3_MULTI", "")

	content, missing := substituteEnvVars("${VAR1_MULTI} ${DISCDB_VAR2_NONEXISTENT} ${VAR3_MULTI:-three}")
	if content != "one ${DISCDB_VAR2_NONEXISTENT} three" {
		t.Errorf("expected 'one ${DISCDB_VAR2_NONEXISTENT} three', got %q", content)
	}
	if len(missing) != 1 || missing[0] != "DISCDB_VAR2_NONEXISTENT" {
		t.Errorf("expected [DISCDB_VAR2_NONEXISTENT], got %v", missing)
	}
}

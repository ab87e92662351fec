package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/huntersfinds/internal/domain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HUNTERS_CONFIG", "")

	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRate(t *testing.T) {
	out, err := execute(t, "rate", "--format", "json",
		"--restaurant", "pizza haven", "--dish", "margherita", "--category", "margherita pizza",
		"--price", "14.00", "--taste", "92", "--portion", "90")
	require.NoError(t, err)

	var got ratingOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.InDelta(t, 76.6, got.Score, 1e-9)
	assert.Equal(t, 50, got.PriceValue)
	assert.Equal(t, "fair", got.Tier)
	assert.Equal(t, 5, got.Rank)
	assert.Equal(t, 5, got.Total)
	assert.Equal(t, "margherita pizza", got.Top.Name)
	require.NotNil(t, got.Above)
	assert.Equal(t, "classic cheeseburger", got.Above.Name)
	assert.Nil(t, got.Below)
}

func TestRateRejectsBadInput(t *testing.T) {
	_, err := execute(t, "rate", "--restaurant", "pizza haven", "--dish", "margherita", "--category", "margherita pizza")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")

	_, err = execute(t, "rate", "--category", "sushi", "--price", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")

	_, err = execute(t, "rate", "--format", "xml")
	require.Error(t, err)
}

func TestLeaderboard(t *testing.T) {
	out, err := execute(t, "leaderboard", "--kind", "restaurants", "--format", "yaml")
	require.NoError(t, err)

	var entries []types.Entry
	require.NoError(t, yaml.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 3)
	assert.Equal(t, "pizza haven", entries[0].Name)
	assert.Equal(t, 1, entries[0].Rank)
	assert.Equal(t, "joe's diner", entries[2].Name)

	out, err = execute(t, "leaderboard", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "margherita pizza @ pizza haven")

	_, err = execute(t, "leaderboard", "--kind", "groups")
	require.Error(t, err)
}

func TestCategories(t *testing.T) {
	out, err := execute(t, "categories", "burr")
	require.NoError(t, err)
	assert.Contains(t, out, "california burrito")
	assert.Contains(t, out, "$11.00")
	assert.NotContains(t, out, "cheeseburger")

	cfgPath := filepath.Join(t.TempDir(), "hunters.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("category_averages:\n  ramen: 15\n"), 0o600))
	out, err = execute(t, "categories", "--config", cfgPath, "--format", "json")
	require.NoError(t, err)

	var got []categoryOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []categoryOutput{{Name: "ramen", AveragePrice: 15}}, got)
}

func TestBrowse(t *testing.T) {
	out, err := execute(t, "browse", "--format", "json")
	require.NoError(t, err)

	var steps []browseStep
	require.NoError(t, json.Unmarshal([]byte(out), &steps))
	want := []browseStep{
		{Action: "open group", Showing: "group", Title: "foodie squad"},
		{Action: "open member", Showing: "user", Title: "alice", Depth: 2, CanGoBack: true},
		{Action: "open dish", Showing: "dish", Title: "carne asada tacos", Depth: 3, CanGoBack: true},
		{Action: "back", Showing: "user", Title: "alice", Depth: 2, CanGoBack: true},
		{Action: "back", Showing: "group", Title: "foodie squad", Depth: 1},
	}
	assert.Equal(t, want, steps)

	_, err = execute(t, "browse", "--group", "nobody")
	require.Error(t, err)
}

func TestSimulate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subs.json")
	out, err := execute(t, "simulate", "--count", "25", "--seed", "5", "--output", path, "--format", "json")
	require.NoError(t, err)

	var got simulateOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, 25, got.Submitted)
	assert.Equal(t, 25, got.Verified)
	assert.Zero(t, got.Failed)
	assert.FileExists(t, path)
}

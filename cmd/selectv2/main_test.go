package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ruminaider/selectv2/internal/config"
	"github.com/ruminaider/selectv2/internal/filter"
	"github.com/ruminaider/selectv2/internal/item"
	"github.com/ruminaider/selectv2/internal/paths"
	"github.com/ruminaider/selectv2/internal/source"
	"github.com/ruminaider/selectv2/internal/store"
)

var testItems = []item.Item{
	{Value: 1, Title: "Apple"},
	{Value: 2, Title: "Banana"},
	{Value: 3, Title: "Cherry"},
}

func TestRunFilter_Static(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runFilter(&buf, config.Default(), testItems, "an"))
	assert.Equal(t, "  Banana (2)\n", buf.String())
}

func TestRunFilter_NoResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runFilter(&buf, config.Default(), testItems, "zzz"))
	assert.Equal(t, "  (no results)\n", buf.String())
}

func TestRunFilter_Fetch(t *testing.T) {
	cfg := config.Default()
	cfg.Source = source.KindSingleFetch.String()

	var buf bytes.Buffer
	require.NoError(t, runFilter(&buf, cfg, testItems, "err"))
	assert.Equal(t, "  Cherry (3)\n", buf.String())
}

func TestRunFilter_PagedLoadsEveryPage(t *testing.T) {
	cfg := config.Default()
	cfg.Source = source.KindPaginated.String()
	cfg.PageSize = 2

	var buf bytes.Buffer
	require.NoError(t, runFilter(&buf, cfg, testItems, ""))
	assert.Equal(t, "  Apple (1)\n  Banana (2)\n  Cherry (3)\n", buf.String())
}

func TestPrintRows(t *testing.T) {
	var buf bytes.Buffer
	printRows(&buf, []filter.Row{
		filter.Category(filter.CategoryCustom),
		filter.ItemRow(item.Item{Value: "k", Title: "Kiwi", IsCustom: true}),
		filter.Category(filter.CategoryOriginal),
		filter.NotFound(),
	})
	assert.Equal(t, "── Custom ──\n  Kiwi (k)\n── Original ──\n  (no results)\n", buf.String())
}

func TestPrintSelection(t *testing.T) {
	var buf bytes.Buffer
	printSelection(&buf, testItems[:2])
	assert.Equal(t, "Apple (1)\nBanana (2)\n", buf.String())
}

func TestWidgetFlags_Apply(t *testing.T) {
	var f widgetFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--source", "paged", "--multiple", "--page-size", "7"}))

	cfg := config.Default()
	cfg.CreationEnabled = true
	require.NoError(t, f.apply(cmd, &cfg))
	assert.Equal(t, "paged", cfg.Source)
	assert.True(t, cfg.Multiple)
	assert.Equal(t, 7, cfg.PageSize)
	assert.True(t, cfg.CreationEnabled, "unset flags keep file values")
}

func TestWidgetFlags_ApplyRejectsUnknownSource(t *testing.T) {
	var f widgetFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--source", "graphql"}))

	cfg := config.Default()
	assert.ErrorIs(t, f.apply(cmd, &cfg), config.ErrInvalidConfig)
}

func TestLoadItems(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	items, err := loadItems("")
	require.NoError(t, err)
	assert.Equal(t, builtinItems, items)

	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - {value: a, title: A}\n"), 0o644))
	items, err = loadItems(path)
	require.NoError(t, err)
	assert.Equal(t, []item.Item{{Value: "a", Title: "A"}}, items)
}

func TestLoadItems_DefaultsToAppDirFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.MkdirAll(paths.AppDir(), 0o755))
	require.NoError(t, os.WriteFile(paths.ItemsFile(), []byte("items:\n  - {value: b, title: B}\n"), 0o644))

	items, err := loadItems("")
	require.NoError(t, err)
	assert.Equal(t, []item.Item{{Value: "b", Title: "B"}}, items)

	require.NoError(t, os.WriteFile(paths.ItemsFile(), []byte("items: [{title: B}]\n"), 0o644))
	_, err = loadItems("")
	assert.ErrorIs(t, err, item.ErrInvalidItem)
}

func TestBuiltinItemsAreValid(t *testing.T) {
	seen := map[item.Value]bool{}
	for _, it := range builtinItems {
		require.NoError(t, item.Validate(it))
		assert.False(t, seen[it.Value], "duplicate value %v", it.Value)
		seen[it.Value] = true
	}
}

func TestNewDemoStore_CreationUsesUUIDs(t *testing.T) {
	cfg := config.Default()
	cfg.Multiple = true
	cfg.CreationEnabled = true

	s, err := newDemoStore(cfg, testItems, 0, nil)
	require.NoError(t, err)
	s.SetSearch("Kiwi")

	cmd := s.Create()
	require.NotNil(t, cmd)
	s.Update(cmd())

	require.Len(t, s.Created(), 1)
	created := s.Created()[0]
	assert.Equal(t, "Kiwi", created.Title)
	_, err = uuid.Parse(created.Value.(string))
	assert.NoError(t, err)
}

func TestNewDemoStore_WithoutCreation(t *testing.T) {
	s, err := newDemoStore(config.Default(), testItems, 0, nil)
	require.NoError(t, err)
	assert.False(t, s.IsCreateItemVisible())
	assert.Equal(t, source.KindStatic, s.Source().Kind())
}

func TestNewDemoSource_Kinds(t *testing.T) {
	for _, kind := range []source.Kind{source.KindStatic, source.KindSingleFetch, source.KindPaginated} {
		ds, err := newDemoSource(kind, testItems, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, kind, ds.src.Kind())
	}
	_, err := newDemoSource(source.Kind(42), testItems, 0, 0)
	assert.Error(t, err)
}

func TestPreload_Paged(t *testing.T) {
	ds, err := newDemoSource(source.KindPaginated, testItems, 1, 0)
	require.NoError(t, err)
	s, err := store.New(store.Options{Source: ds.src})
	require.NoError(t, err)

	require.NoError(t, ds.preload(s, ""))
	assert.Len(t, ds.pages.Pages(), 3)
	assert.Equal(t, testItems, filter.Items(s.Rows()))
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "selectv2 "+version+"\n", buf.String())
}

func TestNewLogger(t *testing.T) {
	debugFlag = false
	assert.Nil(t, newLogger(os.Stderr))

	debugFlag = true
	t.Cleanup(func() { debugFlag = false })
	var buf bytes.Buffer
	logger := newLogger(&buf)
	require.NotNil(t, logger)
	logger.Debug("hello")
	assert.Contains(t, buf.String(), "hello")
}

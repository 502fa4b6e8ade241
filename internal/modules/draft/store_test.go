package draft

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleDraft(name string) *Draft {
	return &Draft{
		Name:         name,
		Email:        "kim@x.com",
		Gender:       "female",
		Date:         "2024-05-01",
		Time:         "오후 02:00",
		Location:     "gangnam-11",
		Areas:        []string{"compact"},
		Purpose:      "daily",
		BasePrice:    9900,
		AddOnPrice:   4900,
		TotalPrice:   9900,
		TotalMinutes: 10,
		TimeDetail:   &TimeRange{StartLabel: "14:00", EndLabel: "14:10"},
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded, "empty store must report an absent draft")

	require.NoError(t, store.Save(sampleDraft("Kim")))

	loaded, err = store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.Equal(t, "Kim", loaded.Name)
	require.Equal(t, []string{"compact"}, loaded.Areas)
	require.NotNil(t, loaded.TimeDetail)
	require.Equal(t, "14:00", loaded.TimeDetail.StartLabel)
}

func TestFileStore_LastWriteWins(t *testing.T) {
	store := NewFileStore(t.TempDir())

	require.NoError(t, store.Save(sampleDraft("Kim")))
	require.NoError(t, store.Save(sampleDraft("Lee")))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "Lee", loaded.Name)
}

func TestFileStore_Clear(t *testing.T) {
	store := NewFileStore(t.TempDir())

	require.NoError(t, store.Save(sampleDraft("Kim")))
	require.NoError(t, store.Clear())

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)

	// Clearing an already-empty slot is not an error.
	require.NoError(t, store.Clear())
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	loaded, err := store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)

	require.NoError(t, store.Save(sampleDraft("Kim")))
	require.NoError(t, store.Save(sampleDraft("Lee")))

	loaded, err = store.Load()
	require.NoError(t, err)
	require.Equal(t, "Lee", loaded.Name)

	// Load hands out copies, not the stored value.
	loaded.Name = "mutated"
	again, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "Lee", again.Name)

	require.NoError(t, store.Clear())
	loaded, err = store.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)
}

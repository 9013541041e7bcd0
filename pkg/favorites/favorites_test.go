package favorites

import (
	"errors"
	"testing"

	"github.com/byxorna/standings/pkg/db/memory"
	"github.com/byxorna/standings/pkg/types/v1"
	"github.com/stretchr/testify/require"
)

var (
	entries = []v1.Team{
		{ID: 1, Name: "FC Barcelona"},
		{ID: 2, Name: "Real Madrid"},
		{ID: 3, Name: "Valencia CF"},
	}
)

func TestToggle(t *testing.T) {
	var s Set

	next, added := s.Toggle(2)
	require.True(t, added)
	require.True(t, next.Has(2))
	require.False(t, s.Has(2), "toggle must not change the receiver")
	require.Equal(t, []v1.ID{2}, next.IDs())

	back, added := next.Toggle(2)
	require.False(t, added)
	require.False(t, back.Has(2))
	require.Equal(t, 0, back.Len())
}

func TestTogglePairs(t *testing.T) {
	start := NewSet(1, 3)
	for _, id := range []v1.ID{1, 2, 3, 4} {
		s := start
		for i := 0; i < 4; i++ {
			s, _ = s.Toggle(id)
		}
		require.Equal(t, start.Has(id), s.Has(id), "id %d", id)
		require.Equal(t, start.Len(), s.Len(), "id %d", id)
	}
}

func TestToggleKeepsOrder(t *testing.T) {
	s := NewSet(3, 1)
	s, _ = s.Toggle(2)
	require.Equal(t, []v1.ID{3, 1, 2}, s.IDs())
	s, _ = s.Toggle(1)
	require.Equal(t, []v1.ID{3, 2}, s.IDs())
}

func TestSelect(t *testing.T) {
	s := NewSet(3, 99, 1)
	got := s.Select(entries)
	require.Len(t, got, 2)
	require.Equal(t, "Valencia CF", got[0].Name)
	require.Equal(t, "FC Barcelona", got[1].Name)
}

func TestRestore(t *testing.T) {
	testcases := map[string]struct {
		stored   []v1.ID
		entries  []v1.Team
		expected []v1.ID
	}{
		"missing id is dropped": {
			stored:   []v1.ID{99},
			entries:  entries[:2],
			expected: []v1.ID{},
		},
		"load order": {
			stored:   []v1.ID{3, 1},
			entries:  entries,
			expected: []v1.ID{1, 3},
		},
		"duplicates collapse": {
			stored:   []v1.ID{2, 2, 2},
			entries:  entries,
			expected: []v1.ID{2},
		},
		"nothing loaded": {
			stored:   []v1.ID{1, 2},
			entries:  nil,
			expected: []v1.ID{},
		},
	}

	for name, tc := range testcases {
		got := Restore(tc.stored, tc.entries)
		require.Equal(t, tc.expected, got.IDs(), name)
	}
}

func TestDecode(t *testing.T) {
	testcases := map[string]struct {
		raw      string
		expected []v1.ID
		err      bool
	}{
		"ids":       {raw: `[2, 1]`, expected: []v1.ID{2, 1}},
		"empty":     {raw: `[]`, expected: []v1.ID{}},
		"blank":     {raw: ``, expected: nil},
		"null":      {raw: `null`, expected: nil},
		"snapshots": {raw: `[{"id":2,"name":"Real Madrid","points":82},{"id":1,"name":"FC Barcelona"}]`, expected: []v1.ID{2, 1}},
		"mixed":     {raw: `[1,{"id":2}]`, expected: []v1.ID{1, 2}},
		"object":    {raw: `{"id":1}`, err: true},
		"garbage":   {raw: `not json`, err: true},
		"strings":   {raw: `["1"]`, err: true},
		"no id":     {raw: `[{"name":"Real Madrid"}]`, err: true},
	}

	for name, tc := range testcases {
		got, err := Decode(tc.raw)
		if tc.err {
			require.True(t, errors.Is(err, ErrMalformed), "%s: expected ErrMalformed, got %v", name, err)
			continue
		}
		require.NoError(t, err, name)
		require.Equal(t, tc.expected, got, name)
	}
}

func TestStoreRoundTrip(t *testing.T) {
	kv := memory.New()
	store := NewStore(kv, "")
	require.Equal(t, DefaultKey, store.Key)

	ids, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, ids)

	require.NoError(t, store.Save(NewSet(2, 1)))
	raw, err := kv.Get(DefaultKey)
	require.NoError(t, err)
	require.Equal(t, "[2,1]", raw)

	ids, err = store.Load()
	require.NoError(t, err)
	require.Equal(t, []v1.ID{2, 1}, ids)
}

func TestStoreSaveEmpty(t *testing.T) {
	kv := memory.New()
	store := NewStore(kv, "favs")
	require.NoError(t, store.Save(Set{}))
	raw, err := kv.Get("favs")
	require.NoError(t, err)
	require.Equal(t, "[]", raw)
}

func TestStoreLoadMalformed(t *testing.T) {
	kv := memory.New()
	require.NoError(t, kv.Set(DefaultKey, `{"broken":`))
	_, err := NewStore(kv, DefaultKey).Load()
	require.ErrorIs(t, err, ErrMalformed)
}

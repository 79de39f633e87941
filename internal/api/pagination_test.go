package api

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recipe-share/internal/apperr"
	"github.com/recipe-share/internal/config"
)

var testPageCfg = config.PaginationConfig{DefaultPageSize: 20, MaxPageSize: 50}

func TestParsePagination_Defaults(t *testing.T) {
	params, err := parsePagination(url.Values{}, testPageCfg)
	require.NoError(t, err)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Elements)
	assert.Equal(t, 0, params.Offset())
}

func TestParsePagination_Explicit(t *testing.T) {
	params, err := parsePagination(url.Values{"page": {"3"}, "elements": {"10"}}, testPageCfg)
	require.NoError(t, err)
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 10, params.Elements)
	assert.Equal(t, 20, params.Offset())
	assert.Equal(t, 10, params.Limit())
}

func TestParsePagination_Bounds(t *testing.T) {
	_, err := parsePagination(url.Values{"elements": {"0"}}, testPageCfg)
	assert.Error(t, err)

	_, err = parsePagination(url.Values{"elements": {"51"}}, testPageCfg)
	assert.Error(t, err)

	params, err := parsePagination(url.Values{"elements": {"50"}}, testPageCfg)
	require.NoError(t, err)
	assert.Equal(t, 50, params.Elements)
}

func TestParsePagination_BothInvalidReportedTogether(t *testing.T) {
	_, err := parsePagination(url.Values{"page": {"zero"}, "elements": {"-1"}}, testPageCfg)
	require.Error(t, err)
	assert.Equal(t, apperr.Pagination, apperr.KindOf(err))
	assert.Len(t, apperr.MessagesOf(err), 2)
}

func TestParsePagination_NonInteger(t *testing.T) {
	_, err := parsePagination(url.Values{"page": {"1.5"}}, testPageCfg)
	require.Error(t, err)
	assert.Equal(t, apperr.Pagination, apperr.KindOf(err))
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total    int
		elements int
		want     int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 50, 2},
		{101, 50, 3},
	}

	for _, tc := range cases {
		params := pageParams{Page: 1, Elements: tc.elements}
		assert.Equal(t, tc.want, params.TotalPages(tc.total),
			"total=%d elements=%d", tc.total, tc.elements)
	}
}

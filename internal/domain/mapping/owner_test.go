package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectOwnerEmailColumn(t *testing.T) {
	emailRows := func(col, total int, v string) [][]string {
		rows := make([][]string, 20)
		for i := range rows {
			row := make([]string, total)
			row[col] = v
			rows[i] = row
		}
		return rows
	}

	t.Run("agent email column with valid emails wins decisively", func(t *testing.T) {
		headers := []string{"Agent Email", "Contact"}
		rows := make([][]string, 20)
		for i := range rows {
			rows[i] = []string{"agent@realty.com", "John Smith"}
		}

		owner := DetectOwnerEmailColumn(headers, rows)
		require.NotNil(t, owner)
		assert.Equal(t, "Agent Email", owner.Header)
		assert.Equal(t, 0, owner.Index)
		assert.GreaterOrEqual(t, owner.Score, 90)
	})

	t.Run("known exact phrases score from the header alone", func(t *testing.T) {
		owner := DetectOwnerEmailColumn([]string{"Assigned Agent"}, emailRows(0, 1, "a@b.com"))
		require.NotNil(t, owner)
		// 95 header weight plus full email content
		assert.Equal(t, 97, owner.Score)
	})

	t.Run("owner and email tokens together score 85 on the header", func(t *testing.T) {
		owner := DetectOwnerEmailColumn([]string{"Broker E-Mail Address"}, nil)
		require.NotNil(t, owner)
		// round(85*0.7) with no content evidence
		assert.Equal(t, 60, owner.Score)
	})

	t.Run("owner token alone stays below the cutoff without content", func(t *testing.T) {
		// "Owner" alone: round(55*0.7) = 39 < 45
		assert.Nil(t, DetectOwnerEmailColumn([]string{"Owner"}, nil))
	})

	t.Run("owner token plus email content clears the cutoff", func(t *testing.T) {
		owner := DetectOwnerEmailColumn([]string{"Owner"}, emailRows(0, 1, "owner@firm.com"))
		require.NotNil(t, owner)
		// round(55*0.7 + 100*0.3) = 69
		assert.Equal(t, 69, owner.Score)
	})

	t.Run("generic headers without owner tokens are never candidates", func(t *testing.T) {
		// Even a column full of emails is not an owner column without
		// header evidence: round(0*0.7 + 100*0.3) = 30 < 45.
		owner := DetectOwnerEmailColumn([]string{"Email"}, emailRows(0, 1, "x@y.com"))
		assert.Nil(t, owner)
	})

	t.Run("ties keep the first-seen column", func(t *testing.T) {
		headers := []string{"Agent Email", "Realtor Email"}
		rows := make([][]string, 10)
		for i := range rows {
			rows[i] = []string{"a@b.com", "c@d.com"}
		}

		owner := DetectOwnerEmailColumn(headers, rows)
		require.NotNil(t, owner)
		assert.Equal(t, 0, owner.Index)
	})

	t.Run("no headers yields nil", func(t *testing.T) {
		assert.Nil(t, DetectOwnerEmailColumn(nil, nil))
	})
}

func TestOwnerHeaderScore(t *testing.T) {
	cases := []struct {
		header string
		score  int
	}{
		{"Agent Email", 95},
		{"Assigned Agent", 95},
		{"Broker E-Mail", 85},
		{"Rep Address", 85},
		{"Advisor Gmail", 75},
		{"Assigned To Agent ID", 70},
		{"Account Manager", 55},
		{"Customer Name", 0},
		{"", 0},
	}

	for _, tc := range cases {
		t.Run(tc.header, func(t *testing.T) {
			assert.Equal(t, tc.score, ownerHeaderScore(tc.header))
		})
	}
}

package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

type matchCacheKeyInput struct {
	OpportunityID string `json:"opportunity_id"`
	MinScore      int    `json:"min_score"`
	Limit         int    `json:"limit"`
}

// MatchesCacheKey hashes the normalized query shape so equal requests
// share one cache entry.
func MatchesCacheKey(params MatchListParams) string {
	in := matchCacheKeyInput{
		OpportunityID: strings.ToLower(params.OpportunityID.String()),
		MinScore:      params.MinScore,
		Limit:         params.Limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	h := hex.EncodeToString(sum[:])
	return "matches:opportunity:" + h
}

func MatchesLockKey(matchKey string) string {
	matchKey = strings.TrimSpace(matchKey)
	if strings.HasPrefix(matchKey, "matches:opportunity:") {
		return "matches:lock:" + strings.TrimPrefix(matchKey, "matches:opportunity:")
	}
	return "matches:lock:" + matchKey
}

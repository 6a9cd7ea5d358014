package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// AccountSessionKey returns the cache key holding the active login JTI
// for an account.
func (r *CacheKeyStruct) AccountSessionKey(accountID int) string {
	return fmt.Sprintf("login:%d", accountID)
}

// QuizSummaryKey returns the cache key for a quiz aggregate summary
// (question count plus success/fail sums).
func (r *CacheKeyStruct) QuizSummaryKey(quizID string) string {
	return fmt.Sprintf("quiz:%s:summary", quizID)
}

// QuizStatsChannel returns the Redis PubSub channel name carrying live
// participation tallies for a quiz.
func (r *CacheKeyStruct) QuizStatsChannel(quizID string) string {
	return fmt.Sprintf("quiz:%s:stats", quizID)
}

var CacheKey = NewCacheKeyStruct()

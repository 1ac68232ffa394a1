// communityTip.go - Defines community tips posted against library videos

package models

import "time"

// CommunityTip is a caregiver tip, optionally attached to a video. Upvotes
// are an unguarded counter: every upvote call increments by one with no
// per-user tracking.
type CommunityTip struct {
	ID         uint      `json:"id" gorm:"primaryKey"` // Tip ID
	VideoID    *uint     `json:"videoId"`              // Video the tip refers to, null if general
	VideoTitle string    `json:"videoTitle"`           // Video title snapshot at posting time
	Author     string    `json:"author"`               // Name of the posting user (from the session)
	Content    string    `json:"content"`              // Tip text
	Upvotes    int       `json:"upvotes"`              // Unguarded upvote counter
	CreatedAt  time.Time `json:"createdAt"`            // Posting timestamp
}

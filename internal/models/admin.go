package models

import "time"

type Statistics struct {
	User struct {
		UsersRegisteredCount int `json:"users_registered_count"`
	} `json:"user"`
	Roadmap struct {
		RoadmapsGeneratedCount int `json:"roadmaps_generated_count"`
		RoadmapsOngoingCount   int `json:"roadmaps_ongoing_count"`
		RoadmapsFinishedCount  int `json:"roadmaps_finished_count"`
	} `json:"roadmap"`
}

// Account is a platform user as seen by administrators.
type Account struct {
	ID            int64                         `json:"id"`
	Method        string                        `json:"method"`
	Email         string                        `json:"email"`
	Name          string                        `json:"name"`
	Avatar        string                        `json:"avatar"`
	TotalRoadmaps int                           `json:"total_roadmaps"`
	IsSuspended   bool                          `json:"is_suspended"`
	IsAdmin       bool                          `json:"is_admin"`
	JoinedAt      time.Time                     `json:"joined_at"`
	Roadmaps      *FilteredList[RoadmapSummary] `json:"roadmaps,omitempty"`
}

type Creator struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Avatar      string    `json:"avatar"`
	IsSuspended bool      `json:"is_suspended"`
	JoinedAt    time.Time `json:"joined_at"`
}

type Duration struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
}

type PersonalizationOptions struct {
	DailyTimeAvailability Duration `json:"daily_time_availability"`
	TotalDuration         Duration `json:"total_duration"`
	SkillLevel            string   `json:"skill_level"`
}

type Progression struct {
	TotalTopics          int        `json:"total_topics"`
	FinishedTopics       int        `json:"finished_topics"`
	CompletionPercentage float64    `json:"completion_percentage"`
	IsFinished           bool       `json:"is_finished"`
	FinishedAt           *time.Time `json:"finished_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// RoadmapSummary is a list row; Creator is set on the roadmap list and
// Progression on the roadmaps embedded in an account.
type RoadmapSummary struct {
	ID                     int64                  `json:"id"`
	Title                  string                 `json:"title"`
	Slug                   string                 `json:"slug"`
	Description            string                 `json:"description"`
	TotalTopics            int                    `json:"total_topics"`
	TotalBookmarks         int                    `json:"total_bookmarks"`
	CreatedAt              time.Time              `json:"created_at"`
	UpdatedAt              time.Time              `json:"updated_at"`
	PersonalizationOptions PersonalizationOptions `json:"personalization_options"`
	Creator                *Creator               `json:"creator,omitempty"`
	Progression            *Progression           `json:"progression,omitempty"`
}

type Roadmap struct {
	RoadmapSummary
	Topics []Topic `json:"topics"`
}

type Topic struct {
	ID                  int64      `json:"id"`
	RoadmapID           int64      `json:"roadmap_id"`
	ParentID            int64      `json:"parent_id"`
	Title               string     `json:"title"`
	Slug                string     `json:"slug"`
	Description         string     `json:"description"`
	ProTips             string     `json:"pro_tips"`
	Order               int        `json:"order"`
	IsFinished          bool       `json:"is_finished"`
	FinishedAt          *time.Time `json:"finished_at,omitempty"`
	ExternalSearchQuery string     `json:"external_search_query"`
	Subtopics           []Topic    `json:"subtopics,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// CountTopics returns the number of topics in the tree, subtopics included.
func CountTopics(topics []Topic) int {
	total := 0
	for _, topic := range topics {
		total += 1 + CountTopics(topic.Subtopics)
	}
	return total
}

type Rating struct {
	IsRated                        bool      `json:"is_rated"`
	AccountID                      int64     `json:"account_id"`
	RoadmapID                      int64     `json:"roadmap_id"`
	ProgressionTotalTopics         int       `json:"progression_total_topics"`
	ProgressionTotalFinishedTopics int       `json:"progression_total_finished_topics"`
	Rating                         int       `json:"rating"`
	Comment                        string    `json:"comment"`
	User                           Creator   `json:"user"`
	CreatedAt                      time.Time `json:"created_at"`
	UpdatedAt                      time.Time `json:"updated_at"`
}

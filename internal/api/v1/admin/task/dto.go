package task

import "gorm.io/datatypes"

type CreateTaskInput struct {
	Title        string         `json:"title" binding:"required"`
	Description  string         `json:"description" binding:"required"`
	Category     string         `json:"category" binding:"required"`
	Type         string         `json:"type" binding:"required,oneof=survey task bidding transcription"`
	Reward       float64        `json:"reward" binding:"required,gt=0"`
	Duration     string         `json:"duration"`
	Difficulty   string         `json:"difficulty" binding:"omitempty,oneof=Easy Medium Hard"`
	Requirements string         `json:"requirements"`
	MaxResponses int            `json:"max_responses" binding:"omitempty,min=0"`
	MaxBidders   int            `json:"max_bidders" binding:"omitempty,min=0"`
	Deadline     string         `json:"deadline"`
	CanRedo      bool           `json:"can_redo"`
	Questions    datatypes.JSON `json:"questions"`
	Instructions string         `json:"instructions"`
	Attachments  datatypes.JSON `json:"attachments"`
	AudioURL     string         `json:"audio_url"`
}

// UpdateTaskInput uses pointers so absent fields stay untouched.
type UpdateTaskInput struct {
	Title        *string        `json:"title,omitempty"`
	Description  *string        `json:"description,omitempty"`
	Category     *string        `json:"category,omitempty"`
	Reward       *float64       `json:"reward,omitempty" binding:"omitempty,gt=0"`
	Duration     *string        `json:"duration,omitempty"`
	Difficulty   *string        `json:"difficulty,omitempty" binding:"omitempty,oneof=Easy Medium Hard"`
	Requirements *string        `json:"requirements,omitempty"`
	MaxResponses *int           `json:"max_responses,omitempty" binding:"omitempty,min=0"`
	MaxBidders   *int           `json:"max_bidders,omitempty" binding:"omitempty,min=0"`
	Deadline     *string        `json:"deadline,omitempty"`
	CanRedo      *bool          `json:"can_redo,omitempty"`
	Questions    datatypes.JSON `json:"questions,omitempty"`
	Instructions *string        `json:"instructions,omitempty"`
	Attachments  datatypes.JSON `json:"attachments,omitempty"`
	AudioURL     *string        `json:"audio_url,omitempty"`
	IsActive     *bool          `json:"is_active,omitempty"`
}

func (in *UpdateTaskInput) updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Category != nil {
		updates["category"] = *in.Category
	}
	if in.Reward != nil {
		updates["reward"] = *in.Reward
	}
	if in.Duration != nil {
		updates["duration"] = *in.Duration
	}
	if in.Difficulty != nil {
		updates["difficulty"] = *in.Difficulty
	}
	if in.Requirements != nil {
		updates["requirements"] = *in.Requirements
	}
	if in.MaxResponses != nil {
		updates["max_responses"] = *in.MaxResponses
	}
	if in.MaxBidders != nil {
		updates["max_bidders"] = *in.MaxBidders
	}
	if in.Deadline != nil {
		updates["deadline"] = *in.Deadline
	}
	if in.CanRedo != nil {
		updates["can_redo"] = *in.CanRedo
	}
	if in.Questions != nil {
		updates["questions"] = in.Questions
	}
	if in.Instructions != nil {
		updates["instructions"] = *in.Instructions
	}
	if in.Attachments != nil {
		updates["attachments"] = in.Attachments
	}
	if in.AudioURL != nil {
		updates["audio_url"] = *in.AudioURL
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	return updates
}

type RejectSubmissionInput struct {
	Feedback string `json:"feedback" binding:"required"`
}

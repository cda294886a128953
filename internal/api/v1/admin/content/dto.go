package content

type CreateSignalInput struct {
	Pair       string  `json:"pair" binding:"required"`
	SignalType string  `json:"signal_type" binding:"required,oneof=BUY SELL"`
	EntryPrice float64 `json:"entry_price" binding:"required,gt=0"`
	TP1        float64 `json:"tp1" binding:"required,gt=0"`
	TP2        float64 `json:"tp2" binding:"required,gt=0"`
	StopLoss   float64 `json:"stop_loss" binding:"required,gt=0"`
}

type UpdateSignalStatusInput struct {
	Status string `json:"status" binding:"required,oneof=active hit_tp1 hit_tp2 stopped"`
	Pips   int    `json:"pips"`
}

type UpdateSignalInput struct {
	Pair       *string  `json:"pair,omitempty"`
	SignalType *string  `json:"signal_type,omitempty" binding:"omitempty,oneof=BUY SELL"`
	EntryPrice *float64 `json:"entry_price,omitempty" binding:"omitempty,gt=0"`
	TP1        *float64 `json:"tp1,omitempty" binding:"omitempty,gt=0"`
	TP2        *float64 `json:"tp2,omitempty" binding:"omitempty,gt=0"`
	StopLoss   *float64 `json:"stop_loss,omitempty" binding:"omitempty,gt=0"`
	IsActive   *bool    `json:"is_active,omitempty"`
}

func (in *UpdateSignalInput) updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if in.Pair != nil {
		updates["pair"] = *in.Pair
	}
	if in.SignalType != nil {
		updates["signal_type"] = *in.SignalType
	}
	if in.EntryPrice != nil {
		updates["entry_price"] = *in.EntryPrice
	}
	if in.TP1 != nil {
		updates["tp1"] = *in.TP1
	}
	if in.TP2 != nil {
		updates["tp2"] = *in.TP2
	}
	if in.StopLoss != nil {
		updates["stop_loss"] = *in.StopLoss
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	return updates
}

type CreateCourseInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Level       string `json:"level" binding:"omitempty,oneof=Beginner Intermediate Advanced"`
	Duration    string `json:"duration"`
	VideoURL    string `json:"video_url"`
}

type UpdateCourseInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Level       *string `json:"level,omitempty" binding:"omitempty,oneof=Beginner Intermediate Advanced"`
	Duration    *string `json:"duration,omitempty"`
	VideoURL    *string `json:"video_url,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (in *UpdateCourseInput) updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.Level != nil {
		updates["level"] = *in.Level
	}
	if in.Duration != nil {
		updates["duration"] = *in.Duration
	}
	if in.VideoURL != nil {
		updates["video_url"] = *in.VideoURL
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	return updates
}

type CreateNewsInput struct {
	Headline string `json:"headline" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Source   string `json:"source"`
}

type UpdateNewsInput struct {
	Headline *string `json:"headline,omitempty"`
	Body     *string `json:"body,omitempty"`
	Source   *string `json:"source,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (in *UpdateNewsInput) updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if in.Headline != nil {
		updates["headline"] = *in.Headline
	}
	if in.Body != nil {
		updates["body"] = *in.Body
	}
	if in.Source != nil {
		updates["source"] = *in.Source
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	return updates
}

type CreateAnalysisInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type UpdateAnalysisInput struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func (in *UpdateAnalysisInput) updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Content != nil {
		updates["content"] = *in.Content
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	return updates
}

type CreateTipInput struct {
	Match      string `json:"match" binding:"required"`
	League     string `json:"league" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Prediction string `json:"prediction" binding:"required"`
	Odds       string `json:"odds" binding:"required"`
	Confidence string `json:"confidence" binding:"required,oneof=High Medium Low"`
	Analysis   string `json:"analysis" binding:"required"`
	Date       string `json:"date" binding:"required"`
}

// UpdateTipInput uses pointers so absent fields stay untouched.
type UpdateTipInput struct {
	Match      *string `json:"match,omitempty"`
	League     *string `json:"league,omitempty"`
	Time       *string `json:"time,omitempty"`
	Prediction *string `json:"prediction,omitempty"`
	Odds       *string `json:"odds,omitempty"`
	Confidence *string `json:"confidence,omitempty" binding:"omitempty,oneof=High Medium Low"`
	Analysis   *string `json:"analysis,omitempty"`
	Date       *string `json:"date,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
}

func (in *UpdateTipInput) updates() map[string]interface{} {
	updates := make(map[string]interface{})
	if in.Match != nil {
		updates["match"] = *in.Match
	}
	if in.League != nil {
		updates["league"] = *in.League
	}
	if in.Time != nil {
		updates["time"] = *in.Time
	}
	if in.Prediction != nil {
		updates["prediction"] = *in.Prediction
	}
	if in.Odds != nil {
		updates["odds"] = *in.Odds
	}
	if in.Confidence != nil {
		updates["confidence"] = *in.Confidence
	}
	if in.Analysis != nil {
		updates["analysis"] = *in.Analysis
	}
	if in.Date != nil {
		updates["date"] = *in.Date
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	return updates
}

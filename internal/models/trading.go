package models

import "time"

type SignalStatus string

const (
	SignalStatusActive  SignalStatus = "active"
	SignalStatusHitTP1  SignalStatus = "hit_tp1"
	SignalStatusHitTP2  SignalStatus = "hit_tp2"
	SignalStatusStopped SignalStatus = "stopped"
)

type TradingSignal struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Pair       string       `gorm:"not null" json:"pair"`
	SignalType string       `gorm:"type:varchar(10);not null" json:"signal_type"` // BUY | SELL
	EntryPrice float64      `gorm:"not null" json:"entry_price"`
	TP1        float64      `gorm:"not null" json:"tp1"`
	TP2        float64      `gorm:"not null" json:"tp2"`
	StopLoss   float64      `gorm:"not null" json:"stop_loss"`
	Pips       int          `gorm:"default:0" json:"pips"`
	Status     SignalStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	IsActive   bool         `gorm:"default:true" json:"is_active"`
}

type TradingCourse struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Level       string `json:"level"`
	Duration    string `json:"duration"`
	VideoURL    string `json:"video_url,omitempty"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}

type MarketAnalysis struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"type:text" json:"content"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

type MarketNews struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	Headline string `gorm:"not null" json:"headline"`
	Body     string `gorm:"type:text" json:"body"`
	Source   string `json:"source"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
}

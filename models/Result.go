package models

import (
    "database/sql/driver"
    "encoding/json"
    "errors"
    "time"
)

// JSONMap stores an open-ended key/value payload in a jsonb column
type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
    if m == nil {
        return "{}", nil
    }
    b, err := json.Marshal(m)
    return string(b), err
}

func (m *JSONMap) Scan(value interface{}) error {
    switch v := value.(type) {
    case []byte:
        return json.Unmarshal(v, m)
    case string:
        return json.Unmarshal([]byte(v), m)
    case nil:
        *m = JSONMap{}
        return nil
    }
    return errors.New("unsupported type for JSONMap")
}

// Result represents one scored round for a registration. Append-only:
// disqualification sets a terminal flag, rows are never deleted
type Result struct {
    ID               string       `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
    RegistrationID   string       `gorm:"type:uuid;not null;column:registration_id" json:"registration_id"`
    EntryID          string       `gorm:"type:uuid;not null;column:entry_id" json:"entry_id"`
    RoundLabel       string       `gorm:"type:varchar(50);not null" json:"round_label"`
    RawDetails       JSONMap      `gorm:"type:jsonb;not null;default:'{}'" json:"raw_details"`
    Score            float64      `gorm:"type:numeric(15,5);not null" json:"score"`
    Disqualified     bool         `gorm:"not null;default:false" json:"disqualified"`
    DisqualifyReason string       `gorm:"type:varchar(255)" json:"disqualify_reason"`
    VerificationCode string       `gorm:"type:uuid;unique;not null" json:"verification_code"`
    JudgeID          *string      `gorm:"type:uuid;column:judge_id" json:"judge_id"`
    RecordedAt       time.Time    `gorm:"autoCreateTime" json:"recorded_at"`
    Registration     *Registration `gorm:"foreignKey:RegistrationID" json:"-"`
    Entry            *Entry       `gorm:"foreignKey:EntryID" json:"-"`
    Judge            *Judge       `gorm:"foreignKey:JudgeID" json:"judge"`
}

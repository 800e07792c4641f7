package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type DocumentEmbedding struct {
	Id          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PageContent string            `gorm:"type:text;not null"`
	Embedding   pgvector.Vector   `gorm:"type:vector(384)"` // all-MiniLM-L6-v2 uses 384 dimensions
	Metadata    datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt   time.Time         `gorm:"autoCreateTime"`
}

func (DocumentEmbedding) TableName() string {
	return "documents"
}

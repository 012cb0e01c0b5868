package models

import (
	"github.com/google/uuid"
)

// Entity ids are prefixed random UUIDs. The original demo derived ids from
// the wall clock, which collides under rapid dispatch; random ids close that
// gap while keeping the human-readable prefix.

func NewProductID() string { return "PRD-" + uuid.NewString() }

func NewOrderID() string { return "ORD-" + uuid.NewString() }

func NewUserID() string { return "USR-" + uuid.NewString() }

func NewSlideID() string { return "SLD-" + uuid.NewString() }

func NewRequestID() string { return "REQ-" + uuid.NewString() }

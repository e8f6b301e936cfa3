package domain

import "github.com/google/uuid"

type UserID = uuid.UUID
type CompanyID = uuid.UUID
type ListingID = uuid.UUID
type ApplicationID = uuid.UUID
type SessionID = uuid.UUID
type CredentialID = uuid.UUID

package service

import "context"

type EmailService interface {
	SendActivation(ctx context.Context, to, username, link string) error
	SendApplicationReceived(ctx context.Context, to, listingTitle string) error
	SendNewApplicant(ctx context.Context, to, candidateName, listingTitle string) error
}

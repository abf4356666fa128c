package dto

import (
	"github.com/payrollhq/bureau-api/internal/domain"
)

// FromClient converts a Client domain model to its response DTO
func FromClient(client *domain.Client) ClientResponse {
	return ClientResponse{
		ID:            client.ID,
		TenantID:      client.TenantID,
		Name:          client.Name,
		Status:        string(client.Status),
		ContactName:   client.ContactName,
		ContactEmail:  client.ContactEmail,
		PayeReference: client.PayeReference,
		CreatedAt:     client.CreatedAt,
	}
}

func FromClients(clients []domain.Client) []ClientResponse {
	responses := make([]ClientResponse, len(clients))
	for i := range clients {
		responses[i] = FromClient(&clients[i])
	}
	return responses
}

// FromOnboarding converts a ClientOnboarding domain model to its response DTO
func FromOnboarding(onboarding *domain.ClientOnboarding) *OnboardingRecordResponse {
	if onboarding == nil {
		return nil
	}
	return &OnboardingRecordResponse{
		ID:                 onboarding.ID,
		ClientID:           onboarding.ClientID,
		Tasks:              onboarding.Tasks,
		ProgressPercentage: onboarding.ProgressPercentage,
		CompletedAt:        onboarding.CompletedAt,
		Revision:           onboarding.Revision,
	}
}

// FromOnboardingClients converts onboarding-status clients with their
// preloaded checklist records
func FromOnboardingClients(clients []domain.Client) []OnboardingClientResponse {
	responses := make([]OnboardingClientResponse, len(clients))
	for i := range clients {
		responses[i] = OnboardingClientResponse{
			ClientResponse: FromClient(&clients[i]),
			Onboarding:     FromOnboarding(clients[i].Onboarding),
		}
	}
	return responses
}

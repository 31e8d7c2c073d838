package handler

import (
	"tradeport/internal/domain/repository"
	"tradeport/internal/infrastructure/firebase"
	"tradeport/internal/usecase"
)

var (
	quotationHandler  *QuotationHandler
	onboardingHandler *OnboardingHandler
	reviewHandler     *ReviewHandler
	healthHandler     *HealthHandler
	devTokenHandler   *DevTokenHandler
)

func Setup(
	quotationUseCase *usecase.QuotationUseCase,
	onboardingUseCase *usecase.OnboardingUseCase,
	reviewUseCase *usecase.ReviewUseCase,
) {
	quotationHandler = NewQuotationHandler(quotationUseCase)
	onboardingHandler = NewOnboardingHandler(onboardingUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
}

func SetupHealthHandler(firebaseAuth *firebase.FirebaseAuthClient) {
	healthHandler = NewHealthHandler(firebaseAuth)
}

func SetupDevTokenHandler(firebaseAuth *firebase.FirebaseAuthClient, userRepo repository.UserRepository) {
	devTokenHandler = NewDevTokenHandler(firebaseAuth, userRepo)
}

func GetQuotationHandler() *QuotationHandler {
	return quotationHandler
}

func GetOnboardingHandler() *OnboardingHandler {
	return onboardingHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}

func GetDevTokenHandler() *DevTokenHandler {
	return devTokenHandler
}

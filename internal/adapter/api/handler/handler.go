package handler

import (
	"toromarket/internal/usecase"
)

var (
	authHandler         *AuthHandler
	userHandler         *UserHandler
	listingHandler      *ListingHandler
	catalogHandler      *CatalogHandler
	favoriteHandler     *FavoriteHandler
	messageHandler      *MessageHandler
	notificationHandler *NotificationHandler
	orderHandler        *OrderHandler
	paymentHandler      *PaymentHandler
	analyticsHandler    *AnalyticsHandler
	eventHandler        *EventHandler
	reminderHandler     *ReminderHandler
	resourceHandler     *ResourceHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	listingUseCase *usecase.ListingUseCase,
	catalogUseCase *usecase.CatalogUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
	chatUseCase *usecase.ChatUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	orderUseCase *usecase.OrderUseCase,
	paymentUseCase *usecase.PaymentUseCase,
	analyticsUseCase *usecase.AnalyticsUseCase,
	eventUseCase *usecase.EventUseCase,
	reminderUseCase *usecase.ReminderUseCase,
	resourceUseCase *usecase.ResourceUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(userUseCase)
	listingHandler = NewListingHandler(listingUseCase)
	catalogHandler = NewCatalogHandler(catalogUseCase)
	favoriteHandler = NewFavoriteHandler(favoriteUseCase)
	messageHandler = NewMessageHandler(chatUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	paymentHandler = NewPaymentHandler(paymentUseCase)
	analyticsHandler = NewAnalyticsHandler(analyticsUseCase)
	eventHandler = NewEventHandler(eventUseCase)
	reminderHandler = NewReminderHandler(reminderUseCase)
	resourceHandler = NewResourceHandler(resourceUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetCatalogHandler() *CatalogHandler {
	return catalogHandler
}

func GetFavoriteHandler() *FavoriteHandler {
	return favoriteHandler
}

func GetMessageHandler() *MessageHandler {
	return messageHandler
}

func GetNotificationHandler() *NotificationHandler {
	return notificationHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

func GetAnalyticsHandler() *AnalyticsHandler {
	return analyticsHandler
}

func GetEventHandler() *EventHandler {
	return eventHandler
}

func GetReminderHandler() *ReminderHandler {
	return reminderHandler
}

func GetResourceHandler() *ResourceHandler {
	return resourceHandler
}

package storage

import "housing-reviews/housing-svc/internal/service"

var (
	_ service.UserRepository     = (*PostgresRepository)(nil)
	_ service.HousingRepository  = (*PostgresRepository)(nil)
	_ service.ReviewRepository   = (*PostgresRepository)(nil)
	_ service.PostRepository     = (*PostgresRepository)(nil)
	_ service.ImageRepository    = (*PostgresRepository)(nil)
	_ service.FavoriteRepository = (*PostgresRepository)(nil)
	_ service.ReviewTx           = (*reviewTx)(nil)
	_ service.HousingCache       = (*RedisCache)(nil)
	_ service.ReviewPublisher    = (*KafkaPublisher)(nil)
	_ service.ObjectStore        = (*MinioStore)(nil)
	_ service.Summarizer         = (*CompletionClient)(nil)
	_ service.Mailer             = (*SMTPMailer)(nil)
)

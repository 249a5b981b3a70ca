package blackout

import "github.com/clubelmeta/CEM-SalonService/pkg/txmanager"

// Переиспользуем интерфейс executor-а из txmanager для работы с БД
type DBExecutor = txmanager.DBExecutor

package catalog

import (
	"github.com/clubelmeta/CEM-SalonService/pkg/txmanager"
)

// DBExecutor интерфейс для выполнения запросов к базе данных
type DBExecutor = txmanager.DBExecutor

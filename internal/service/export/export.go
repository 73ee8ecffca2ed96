package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"parceltrack/internal/entities"
	"parceltrack/pkg/logger"
)

// Service проецирует состояние хранилища в файлы выгрузки.
// Все четыре формата рендерятся из ОДНОГО снимка строк: между форматами
// запросов к хранилищу нет, расхождение форматов невозможно.
type Service struct {
	log       logger.Logger
	shipments ShipmentSource
	accounts  AccountSource
	dir       string
}

func New(log logger.Logger, shipments ShipmentSource, accounts AccountSource, dir string) *Service {
	return &Service{
		log:       log,
		shipments: shipments,
		accounts:  accounts,
		dir:       dir,
	}
}

func (s *Service) RefreshDeliveries(ctx context.Context) error {
	views, err := s.shipments.ListViews(ctx)
	if err != nil {
		return fmt.Errorf("snapshot deliveries: %w", err)
	}

	docs := toShipmentDocuments(views)

	records := make([][]string, len(docs))
	for i := range docs {
		records[i] = docs[i].csvRecord()
	}

	files, err := renderAll(docs, &deliveriesXML{Items: docs}, shipmentCSVHeader, records, "deliveries")
	if err != nil {
		return err
	}

	if err := s.writeAll(ctx, files); err != nil {
		return err
	}

	s.log.Info("deliveries export refreshed",
		logger.NewField("rows", len(docs)),
	)
	return nil
}

func (s *Service) RefreshUsers(ctx context.Context) error {
	accounts, err := s.accounts.List(ctx, entities.RoleUser)
	if err != nil {
		return fmt.Errorf("snapshot users: %w", err)
	}

	docs := toUserDocuments(accounts)

	records := make([][]string, len(docs))
	for i := range docs {
		records[i] = docs[i].csvRecord()
	}

	files, err := renderAll(docs, &usersXML{Items: docs}, userCSVHeader, records, "users")
	if err != nil {
		return err
	}

	if err := s.writeAll(ctx, files); err != nil {
		return err
	}

	s.log.Info("users export refreshed",
		logger.NewField("rows", len(docs)),
	)
	return nil
}

func renderAll(docs interface{}, xmlRoot interface{}, csvHeader []string, csvRecords [][]string, name string) (map[string][]byte, error) {
	jsonData, err := renderJSON(docs)
	if err != nil {
		return nil, err
	}
	yamlData, err := renderYAML(docs)
	if err != nil {
		return nil, err
	}
	xmlData, err := renderXML(xmlRoot)
	if err != nil {
		return nil, err
	}
	csvData, err := renderCSV(csvHeader, csvRecords)
	if err != nil {
		return nil, err
	}

	return map[string][]byte{
		name + ".json": jsonData,
		name + ".yaml": yamlData,
		name + ".xml":  xmlData,
		name + ".csv":  csvData,
	}, nil
}

func (s *Service) writeAll(ctx context.Context, files map[string][]byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	g, _ := errgroup.WithContext(ctx)
	for name, data := range files {
		g.Go(func() error {
			return s.writeFile(name, data)
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("write export files: %w", err)
	}
	return nil
}

// writeFile пишет во временный файл и переименовывает: читатели выгрузки
// никогда не видят наполовину записанный файл.
func (s *Service) writeFile(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", name, err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}

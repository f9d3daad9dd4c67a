package ingesting

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
	"github.com/vfg2006/revenue-dashboard-api/internal/domain"
	"github.com/vfg2006/revenue-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

type fakeTransactor struct {
	err   error
	calls int
}

func (f *fakeTransactor) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(nil)
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) Invalidate() {
	f.calls++
}

var importedAt = time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)

type serviceFixture struct {
	service     *Service
	recordRepo  *mocks.MockRecordRepository
	batchRepo   *mocks.MockImportBatchRepository
	transactor  *fakeTransactor
	invalidator *fakeInvalidator
}

func newServiceFixture(t *testing.T, cfg config.Import) serviceFixture {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	fixture := serviceFixture{
		recordRepo:  mocks.NewMockRecordRepository(ctrl),
		batchRepo:   mocks.NewMockImportBatchRepository(ctrl),
		transactor:  &fakeTransactor{},
		invalidator: &fakeInvalidator{},
	}

	ids := []string{"lote00000001", "lote00000002", "lote00000003"}
	next := 0

	fixture.service = &Service{
		recordRepo:  fixture.recordRepo,
		batchRepo:   fixture.batchRepo,
		transactor:  fixture.transactor,
		invalidator: fixture.invalidator,
		cfg:         cfg,
		now:         func() time.Time { return importedAt },
		generateID: func() (string, error) {
			id := ids[next]
			next++
			return id, nil
		},
	}

	return fixture
}

func defaultImportConfig() config.Import {
	return config.Import{MaxFileSizeMB: 20, InsertChunkSize: 500}
}

func contractsFile(t *testing.T) UploadedFile {
	content := buildWorkbook(t, [][]any{
		{"Nome Cliente", "Valor Total", "Data"},
		{"Acme", 1000, "01/01/24"},
		{"", 500, "01/01/24"},
		{"Beta", 0, "01/01/24"},
	})
	return UploadedFile{Name: "contratos.xlsx", Size: int64(len(content)), Content: content}
}

func TestService_ImportFiles(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Import
		files    func(t *testing.T) []UploadedFile
		setup    func(f serviceFixture)
		validate func(t *testing.T, f serviceFixture, results []domain.ImportResult)
	}{
		{
			name: "contratos importados com sucesso",
			cfg:  defaultImportConfig(),
			files: func(t *testing.T) []UploadedFile {
				return []UploadedFile{contractsFile(t)}
			},
			setup: func(f serviceFixture) {
				f.batchRepo.EXPECT().
					Create(gomock.Any(), gomock.Nil(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sql.Tx, batch *domain.ImportBatch) error {
						assert.Equal(t, "lote00000001", batch.ID)
						assert.Equal(t, domain.RecordKindContracts, batch.Kind)
						assert.Equal(t, domain.BatchStatusSuccess, batch.Status)
						assert.Equal(t, 1, batch.RecordCount)
						assert.NotEmpty(t, batch.Checksum)
						return nil
					})

				f.recordRepo.EXPECT().
					InsertRevenue(gomock.Any(), gomock.Nil(), domain.RecordKindContracts, "lote00000001", gomock.Len(1)).
					Return(nil)
			},
			validate: func(t *testing.T, f serviceFixture, results []domain.ImportResult) {
				require.Len(t, results, 1)
				assert.Empty(t, results[0].Error)
				assert.Equal(t, domain.BatchStatusSuccess, results[0].Batch.Status)
				assert.Equal(t, "Contratos", results[0].Batch.KindLabel)
				assert.Equal(t, importedAt, results[0].Batch.ImportedOn)
				assert.Equal(t, 1, f.transactor.calls)
				assert.Equal(t, 1, f.invalidator.calls)
			},
		},
		{
			name: "cabeçalho desconhecido vira importação com erro",
			cfg:  defaultImportConfig(),
			files: func(t *testing.T) []UploadedFile {
				content := buildWorkbook(t, [][]any{{"Foo", "Bar"}, {"a", "b"}})
				return []UploadedFile{{Name: "outro.xlsx", Size: int64(len(content)), Content: content}}
			},
			setup: func(f serviceFixture) {
				f.batchRepo.EXPECT().
					Create(gomock.Any(), gomock.Nil(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sql.Tx, batch *domain.ImportBatch) error {
						assert.Equal(t, domain.BatchStatusError, batch.Status)
						assert.Equal(t, domain.RecordKindUnknown, batch.Kind)
						assert.Equal(t, 0, batch.RecordCount)
						require.NotNil(t, batch.ErrorMessage)
						assert.Contains(t, *batch.ErrorMessage, "não reconhecido")
						return nil
					})
			},
			validate: func(t *testing.T, f serviceFixture, results []domain.ImportResult) {
				require.Len(t, results, 1)
				assert.Equal(t, "Erro", results[0].Batch.KindLabel)
				assert.NotEmpty(t, results[0].Error)
				assert.Equal(t, 0, f.transactor.calls)
				assert.Equal(t, 0, f.invalidator.calls)
			},
		},
		{
			name: "extensão não suportada",
			cfg:  defaultImportConfig(),
			files: func(t *testing.T) []UploadedFile {
				return []UploadedFile{{Name: "dados.csv", Size: 10, Content: []byte("a;b")}}
			},
			setup: func(f serviceFixture) {
				f.batchRepo.EXPECT().Create(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, f serviceFixture, results []domain.ImportResult) {
				require.Len(t, results, 1)
				assert.Equal(t, domain.BatchStatusError, results[0].Batch.Status)
				assert.Equal(t, "0 KB", results[0].Batch.SizeLabel)
			},
		},
		{
			name: "arquivo acima do limite",
			cfg:  config.Import{MaxFileSizeMB: 1},
			files: func(t *testing.T) []UploadedFile {
				return []UploadedFile{{Name: "grande.xlsx", Size: 2 << 20}}
			},
			setup: func(f serviceFixture) {
				f.batchRepo.EXPECT().Create(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
			},
			validate: func(t *testing.T, f serviceFixture, results []domain.ImportResult) {
				require.Len(t, results, 1)
				assert.Equal(t, "2048 KB", results[0].Batch.SizeLabel)
				assert.Contains(t, results[0].Error, "tamanho máximo")
			},
		},
		{
			name: "falha de um arquivo não impede os seguintes",
			cfg:  defaultImportConfig(),
			files: func(t *testing.T) []UploadedFile {
				return []UploadedFile{
					{Name: "dados.csv", Size: 10, Content: []byte("a;b")},
					contractsFile(t),
				}
			},
			setup: func(f serviceFixture) {
				gomock.InOrder(
					f.batchRepo.EXPECT().
						Create(gomock.Any(), gomock.Nil(), gomock.Any()).
						DoAndReturn(func(_ context.Context, _ *sql.Tx, batch *domain.ImportBatch) error {
							assert.Equal(t, "lote00000001", batch.ID)
							assert.Equal(t, domain.BatchStatusError, batch.Status)
							return nil
						}),
					f.batchRepo.EXPECT().
						Create(gomock.Any(), gomock.Nil(), gomock.Any()).
						DoAndReturn(func(_ context.Context, _ *sql.Tx, batch *domain.ImportBatch) error {
							assert.Equal(t, "lote00000002", batch.ID)
							assert.Equal(t, domain.BatchStatusSuccess, batch.Status)
							return nil
						}),
				)
				f.recordRepo.EXPECT().
					InsertRevenue(gomock.Any(), gomock.Nil(), domain.RecordKindContracts, "lote00000002", gomock.Len(1)).
					Return(nil)
			},
			validate: func(t *testing.T, f serviceFixture, results []domain.ImportResult) {
				require.Len(t, results, 2)
				assert.Equal(t, "dados.csv", results[0].Batch.FileName)
				assert.NotEmpty(t, results[0].Error)
				assert.Equal(t, "contratos.xlsx", results[1].Batch.FileName)
				assert.Empty(t, results[1].Error)
				assert.Equal(t, 1, f.invalidator.calls)
			},
		},
		{
			name: "erro ao gravar registros",
			cfg:  defaultImportConfig(),
			files: func(t *testing.T) []UploadedFile {
				return []UploadedFile{contractsFile(t)}
			},
			setup: func(f serviceFixture) {
				gomock.InOrder(
					f.batchRepo.EXPECT().Create(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil),
					f.recordRepo.EXPECT().
						InsertRevenue(gomock.Any(), gomock.Nil(), domain.RecordKindContracts, "lote00000001", gomock.Any()).
						Return(errors.New("conexão perdida")),
					f.batchRepo.EXPECT().
						Create(gomock.Any(), gomock.Nil(), gomock.Any()).
						DoAndReturn(func(_ context.Context, _ *sql.Tx, batch *domain.ImportBatch) error {
							assert.Equal(t, domain.BatchStatusError, batch.Status)
							assert.Equal(t, 0, batch.RecordCount)
							return nil
						}),
				)
			},
			validate: func(t *testing.T, f serviceFixture, results []domain.ImportResult) {
				require.Len(t, results, 1)
				assert.Contains(t, results[0].Error, "conexão perdida")
				assert.Equal(t, 0, f.invalidator.calls)
			},
		},
		{
			name: "arquivo repetido rejeitado quando configurado",
			cfg:  config.Import{MaxFileSizeMB: 20, RejectDuplicates: true},
			files: func(t *testing.T) []UploadedFile {
				return []UploadedFile{contractsFile(t)}
			},
			setup: func(f serviceFixture) {
				f.batchRepo.EXPECT().
					FindSuccessfulByChecksum(gomock.Any(), gomock.Any()).
					Return(&domain.ImportBatch{ID: "anterior"}, nil)
				f.batchRepo.EXPECT().
					Create(gomock.Any(), gomock.Nil(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sql.Tx, batch *domain.ImportBatch) error {
						assert.Equal(t, domain.BatchStatusError, batch.Status)
						return nil
					})
			},
			validate: func(t *testing.T, f serviceFixture, results []domain.ImportResult) {
				require.Len(t, results, 1)
				assert.Contains(t, results[0].Error, "já importado")
				assert.Equal(t, 0, f.transactor.calls)
			},
		},
		{
			name: "extrato financeiro",
			cfg:  defaultImportConfig(),
			files: func(t *testing.T) []UploadedFile {
				content := buildWorkbook(t, [][]any{
					{"Situação", "Data", "Cliente", "Conta", "Categoria", "Valor", "Saldo"},
					{"Pago", "10/03/2024", "Fornecedor", "Custos", "Despesa Direta", -100, 900},
					{"Recebido", "11/03/2024", "Cliente", "Receitas", "Vendas", 1000, 1900},
				})
				return []UploadedFile{{Name: "extrato.xlsx", Size: int64(len(content)), Content: content}}
			},
			setup: func(f serviceFixture) {
				f.batchRepo.EXPECT().Create(gomock.Any(), gomock.Nil(), gomock.Any()).Return(nil)
				f.recordRepo.EXPECT().
					InsertFinancial(gomock.Any(), gomock.Nil(), "lote00000001", gomock.Len(2)).
					Return(nil)
			},
			validate: func(t *testing.T, f serviceFixture, results []domain.ImportResult) {
				require.Len(t, results, 1)
				assert.Equal(t, domain.RecordKindFinancial, results[0].Batch.Kind)
				assert.Equal(t, 2, results[0].Batch.RecordCount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newServiceFixture(t, tt.cfg)
			tt.setup(f)

			results := f.service.ImportFiles(context.Background(), tt.files(t))

			tt.validate(t, f, results)
		})
	}
}

func TestService_DeleteBatch(t *testing.T) {
	t.Run("remove somente as linhas da importação", func(t *testing.T) {
		f := newServiceFixture(t, defaultImportConfig())

		f.batchRepo.EXPECT().
			GetByID(gomock.Any(), "lote00000001").
			Return(&domain.ImportBatch{ID: "lote00000001", Kind: domain.RecordKindContracts, Status: domain.BatchStatusSuccess}, nil)
		gomock.InOrder(
			f.recordRepo.EXPECT().
				DeleteByBatch(gomock.Any(), gomock.Nil(), domain.RecordKindContracts, "lote00000001").
				Return(int64(3), nil),
			f.batchRepo.EXPECT().Delete(gomock.Any(), gomock.Nil(), "lote00000001").Return(nil),
		)

		err := f.service.DeleteBatch(context.Background(), "lote00000001")

		require.NoError(t, err)
		assert.Equal(t, 1, f.invalidator.calls)
	})

	t.Run("importação com erro não tem linhas para remover", func(t *testing.T) {
		f := newServiceFixture(t, defaultImportConfig())

		f.batchRepo.EXPECT().
			GetByID(gomock.Any(), "falhou").
			Return(&domain.ImportBatch{ID: "falhou", Kind: domain.RecordKindUnknown, Status: domain.BatchStatusError}, nil)
		f.batchRepo.EXPECT().Delete(gomock.Any(), gomock.Nil(), "falhou").Return(nil)

		require.NoError(t, f.service.DeleteBatch(context.Background(), "falhou"))
	})

	t.Run("importação inexistente", func(t *testing.T) {
		f := newServiceFixture(t, defaultImportConfig())

		f.batchRepo.EXPECT().GetByID(gomock.Any(), "nao-existe").Return(nil, nil)

		err := f.service.DeleteBatch(context.Background(), "nao-existe")

		assert.ErrorIs(t, err, ErrBatchNotFound)
		var importErr *ImportError
		require.ErrorAs(t, err, &importErr)
		assert.Equal(t, "IMP_004", importErr.Code)
	})

	t.Run("id vazio", func(t *testing.T) {
		f := newServiceFixture(t, defaultImportConfig())

		assert.ErrorIs(t, f.service.DeleteBatch(context.Background(), ""), ErrBatchIDRequired)
	})

	t.Run("falha na transação", func(t *testing.T) {
		f := newServiceFixture(t, defaultImportConfig())
		f.transactor.err = errors.New("deadlock")

		f.batchRepo.EXPECT().
			GetByID(gomock.Any(), "lote00000001").
			Return(&domain.ImportBatch{ID: "lote00000001", Kind: domain.RecordKindSales}, nil)

		err := f.service.DeleteBatch(context.Background(), "lote00000001")

		assert.ErrorIs(t, err, ErrDeleteBatch)
		assert.Equal(t, 0, f.invalidator.calls)
	})
}

func TestService_Stats(t *testing.T) {
	f := newServiceFixture(t, defaultImportConfig())

	f.batchRepo.EXPECT().List(gomock.Any()).Return([]*domain.ImportBatch{
		{ID: "a", Status: domain.BatchStatusSuccess, RecordCount: 10},
		{ID: "b", Status: domain.BatchStatusSuccess, RecordCount: 5},
		{ID: "c", Status: domain.BatchStatusError},
	}, nil)

	stats, err := f.service.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.ImportStats{Successful: 2, Failed: 1, TotalRecords: 15}, stats)
}

func TestService_ListBatchesError(t *testing.T) {
	f := newServiceFixture(t, defaultImportConfig())

	f.batchRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := f.service.ListBatches(context.Background())

	assert.ErrorIs(t, err, ErrListBatches)
}

func TestService_PurgeFailedBatches(t *testing.T) {
	f := newServiceFixture(t, defaultImportConfig())
	before := importedAt.AddDate(0, 0, -30)

	f.batchRepo.EXPECT().DeleteFailedBefore(gomock.Any(), before).Return(int64(4), nil)

	removed, err := f.service.PurgeFailedBatches(context.Background(), before)

	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
}

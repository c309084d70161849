// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./repository.go -destination=../mocks/mock_transactor.go -package=mocks Transactor
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./user_factor.go -destination=../mocks/mock_user_factor_repository.go -package=mocks UserFactorRepositoryIface
//go:generate mockgen -source=./organization.go -destination=../mocks/mock_organization_repository.go -package=mocks OrganizationRepositoryIface
//go:generate mockgen -source=./profile.go -destination=../mocks/mock_profile_repository.go -package=mocks ProfileRepositoryIface
//go:generate mockgen -source=./site.go -destination=../mocks/mock_site_repository.go -package=mocks SiteRepositoryIface
//go:generate mockgen -source=./quote.go -destination=../mocks/mock_quote_repository.go -package=mocks QuoteRepositoryIface
//go:generate mockgen -source=./transaction.go -destination=../mocks/mock_transaction_repository.go -package=mocks TransactionRepositoryIface
//go:generate mockgen -source=./material.go -destination=../mocks/mock_material_repository.go -package=mocks MaterialRepositoryIface
//go:generate mockgen -source=./task.go -destination=../mocks/mock_task_repository.go -package=mocks TaskRepositoryIface
//go:generate mockgen -source=./attendance.go -destination=../mocks/mock_attendance_repository.go -package=mocks AttendanceRepositoryIface
//go:generate mockgen -source=./ledger_reader.go -destination=../mocks/mock_ledger_reader.go -package=mocks LedgerReaderIface

package handler

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/ads-import-api/internal/config"
	"github.com/vfg2006/ads-import-api/internal/domain"
	"github.com/vfg2006/ads-import-api/internal/usecases/importing"
	"github.com/vfg2006/ads-import-api/pkg/apiErrors"
	"github.com/vfg2006/ads-import-api/pkg/log"
)

// ImportFile aceita a submissão de um arquivo de estrutura de conta de duas
// formas: upload direto multipart (limitado pelo tamanho máximo configurado)
// ou um corpo JSON com o caminho de um arquivo já no sistema de arquivos,
// para exportações grandes demais para upload.
func ImportFile(service importing.Importer, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		contentType := r.Header.Get("Content-Type")

		var req importing.ImportFileRequest
		var cleanup func()

		switch {
		case strings.HasPrefix(contentType, "multipart/form-data"):
			upload, ok := parseUploadRequest(w, r, cfg)
			if !ok {
				return
			}
			req = upload.request
			cleanup = upload.cleanup

		case strings.HasPrefix(contentType, "application/json"):
			pathReq, ok := parsePathRequest(w, r)
			if !ok {
				return
			}
			req = pathReq.request
			cleanup = pathReq.cleanup

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Content-Type deve ser multipart/form-data ou application/json", nil)
			return
		}
		defer cleanup()

		logger.WithFields(log.Fields{
			"account_id": req.AccountID,
			"file_name":  req.FileName,
			"file_size":  req.Size,
		}).Info("imports: processando submissão de arquivo")

		response, err := service.ImportFile(r.Context(), req)
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": req.AccountID,
				"file_name":  req.FileName,
				"error":      err.Error(),
			}).Error("imports: falha no pipeline de importação")

			if response != nil {
				// Falha com ledger criado: devolve id e estatísticas acumuladas
				apiErrors.WriteError(w, apiErrors.ErrImportFailed, err.Error(), response)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("imports: falha ao codificar a resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

type parsedImportRequest struct {
	request importing.ImportFileRequest
	cleanup func()
}

func parseUploadRequest(w http.ResponseWriter, r *http.Request, cfg *config.Config) (parsedImportRequest, bool) {
	maxBytes := int64(cfg.Import.MaxUploadSizeMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if err := r.ParseMultipartForm(maxBytes); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge,
			"Upload excede o tamanho máximo permitido; use a importação por caminho", nil)
		return parsedImportRequest{}, false
	}

	accountID := r.FormValue("account_id")
	if accountID == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account_id é obrigatório", nil)
		return parsedImportRequest{}, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "arquivo não enviado no campo 'file'", nil)
		return parsedImportRequest{}, false
	}

	return parsedImportRequest{
		request: importing.ImportFileRequest{
			AccountID:   accountID,
			AccountName: r.FormValue("account_name"),
			FileName:    header.Filename,
			Source:      file,
			Size:        header.Size,
		},
		cleanup: func() { file.Close() },
	}, true
}

func parsePathRequest(w http.ResponseWriter, r *http.Request) (parsedImportRequest, bool) {
	var body domain.ImportByPathRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return parsedImportRequest{}, false
	}

	if body.AccountID == "" || body.Path == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "account_id e path são obrigatórios", nil)
		return parsedImportRequest{}, false
	}

	file, err := os.Open(body.Path)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrFileNotFound, "arquivo de origem não encontrado", nil)
		return parsedImportRequest{}, false
	}

	var size int64
	if info, err := file.Stat(); err == nil {
		size = info.Size()
	}

	return parsedImportRequest{
		request: importing.ImportFileRequest{
			AccountID:   body.AccountID,
			AccountName: body.AccountName,
			FileName:    filepath.Base(body.Path),
			Source:      file,
			Size:        size,
		},
		cleanup: func() { file.Close() },
	}, true
}

// GetImport busca uma entrada do ledger pelo id
func GetImport(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		entry, err := service.GetImport(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"import_id": id,
				"error":     err.Error(),
			}).Error("imports: falha ao buscar a importação")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		if entry == nil {
			apiErrors.WriteError(w, apiErrors.ErrImportNotFound, "importação não encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entry); err != nil {
			logger.WithError(err).Error("imports: falha ao codificar a resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// ListImports lista as entradas mais recentes do ledger
func ListImports(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		entries, err := service.ListImports()
		if err != nil {
			logger.WithError(err).Error("imports: falha ao listar importações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logger.WithError(err).Error("imports: falha ao codificar a resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

// DeleteImport remove uma entrada do ledger com todos os seus registros
func DeleteImport(service importing.Importer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		response, err := service.DeleteImport(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"import_id": id,
				"error":     err.Error(),
			}).Error("imports: falha ao remover a importação")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		if !response.Deleted {
			apiErrors.WriteError(w, apiErrors.ErrImportNotFound, "importação não encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("imports: falha ao codificar a resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
		}
	})
}

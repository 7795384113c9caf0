package repository

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

//go:generate mockery --name=Sheets

// Sheets is a durable row store. Rows returns every data row of a sheet keyed by its lowercased header
type Sheets interface {
	Rows(ctx context.Context, sheet string) ([]map[string]string, error)
	Append(ctx context.Context, sheet string, row []interface{}) error
	Update(ctx context.Context, sheet, cellRange string, row []interface{}) error
}

type GoogleSheets struct {
	srv           *sheets.Service
	spreadsheetID string
}

// NewGoogleSheets authenticates with a service account key. When spreadsheetID is empty
// the spreadsheet is looked up by name through Drive
func NewGoogleSheets(ctx context.Context, credentialsFile, spreadsheetID, spreadsheetName string) (*GoogleSheets, error) {
	jsonKey, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("google sheets couldn't read credentials file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope, drive.DriveReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("google sheets couldn't parse service account key: %w", err)
	}
	httpClient := jwtConfig.Client(ctx)

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("google sheets couldn't create service: %w", err)
	}

	if spreadsheetID == "" {
		spreadsheetID, err = findSpreadsheet(ctx, httpClient, spreadsheetName)
		if err != nil {
			return nil, err
		}
	}

	return &GoogleSheets{
		srv:           srv,
		spreadsheetID: spreadsheetID,
	}, nil
}

func findSpreadsheet(ctx context.Context, httpClient *http.Client, name string) (string, error) {
	srv, err := drive.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return "", fmt.Errorf("google drive couldn't create service: %w", err)
	}
	q := fmt.Sprintf("name = '%s' and mimeType = 'application/vnd.google-apps.spreadsheet' and trashed = false",
		strings.ReplaceAll(name, "'", `\'`))
	list, err := srv.Files.List().Q(q).Fields("files(id, name)").PageSize(1).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("google drive couldn't list files: %w", err)
	}
	if len(list.Files) == 0 {
		return "", fmt.Errorf("google drive: spreadsheet %q not found", name)
	}
	return list.Files[0].Id, nil
}

func (g *GoogleSheets) Rows(ctx context.Context, sheet string) ([]map[string]string, error) {
	resp, err := g.srv.Spreadsheets.Values.Get(g.spreadsheetID, quote(sheet)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("google sheets couldn't get values of %s: %w", sheet, err)
	}
	return records(resp.Values), nil
}

func (g *GoogleSheets) Append(ctx context.Context, sheet string, row []interface{}) error {
	_, err := g.srv.Spreadsheets.Values.Append(g.spreadsheetID, quote(sheet), &sheets.ValueRange{
		Values: [][]interface{}{row},
	}).ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("google sheets couldn't append row to %s: %w", sheet, err)
	}
	return nil
}

func (g *GoogleSheets) Update(ctx context.Context, sheet, cellRange string, row []interface{}) error {
	_, err := g.srv.Spreadsheets.Values.Update(g.spreadsheetID, quote(sheet)+"!"+cellRange, &sheets.ValueRange{
		Values: [][]interface{}{row},
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("google sheets couldn't update %s!%s: %w", sheet, cellRange, err)
	}
	return nil
}

func quote(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

// records turns a value grid into header-keyed rows. The first row is the header
func records(values [][]interface{}) []map[string]string {
	if len(values) == 0 {
		return nil
	}
	header := make([]string, len(values[0]))
	for i, v := range values[0] {
		header[i] = strings.ToLower(strings.TrimSpace(cell(v)))
	}

	rows := make([]map[string]string, 0, len(values)-1)
	for _, line := range values[1:] {
		row := make(map[string]string, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(line) {
				row[key] = strings.TrimSpace(cell(line[i]))
			} else {
				row[key] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func cell(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// telegram_send_graph.go
package main

import (
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

// telegram limits inline photos, anything bigger goes out as a document
const maxSizePhoto = 150000

// sendChartToTelegram отправляет готовый график в чат аналитика.
// Параметры:
//   - api: экземпляр Telegram API для отправки сообщений
//   - chatID: ID чата для отправки
//   - name: имя графика, попадает в имя файла
//   - graph: байтовый массив с данными изображения PNG
//   - caption: подпись под графиком
func sendChartToTelegram(api *tgbotapi.BotAPI, chatID int64, name string, graph []byte, caption string) {
	fileName := fmt.Sprintf("%s_%s.png", name, time.Now().Format("20060102-150405"))

	pngFile := tgbotapi.FileBytes{
		Name:  fileName,
		Bytes: graph,
	}

	var err error
	if len(graph) < maxSizePhoto {
		msg := tgbotapi.NewPhotoUpload(chatID, pngFile)
		msg.Caption = caption
		_, err = api.Send(msg)
	} else {
		msg := tgbotapi.NewDocumentUpload(chatID, pngFile)
		msg.Caption = caption
		_, err = api.Send(msg)
	}
	if err != nil {
		log.Printf("Ошибка отправки графика %s: %v", name, err)
		errMsg := tgbotapi.NewMessage(chatID,
			fmt.Sprintf("Не удалось отправить график %s. Ошибка: %v", name, err))
		api.Send(errMsg)
	}
}

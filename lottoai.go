package main

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/core"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
)

// Cmd is the bot action chosen for a free text message.
type Cmd struct {
	Action string   `json:"action" yaml:"action"`
	Args   []string `json:"args" yaml:"args"`
}

// LottoAI routes chat messages to bot commands.
type LottoAI struct {
	ChatbotFlow *core.Flow[string, Cmd, struct{}] // Input: user message, Output: bot action

	mu sync.Mutex
}

const chatbotSystemPrompt = `너의 이름은 김점지야.
너의 임무는 사용자의 채팅 메시지를 분석하여 적절한 행동(Action)을 선택하는 것이야.

- 사용자의 의도에 따라 **반드시 아래 중 하나의 행동을 출력**해야 해.
- 행동(Action) 목록:
  - /gen: 새 로또 번호 한 줄을 생성해야 할 때
  - /show: 지금까지 생성한 번호를 보여줘야 할 때
  - /rm: 특정 줄(A~E)을 삭제해야 할 때
  - /clear: 모든 번호를 지워야 할 때
  - /export: 티켓을 이미지로 저장해야 할 때
  - /smallchat: 사용자와 소소한 대화를 할 때

출력 규칙:
- action 필드에는 오직 행동 이름만 출력한다.
- /rm 행동에 대해서는 args 필드의 배열의 첫번째에 삭제할 줄의 알파벳(A~E)을 적어야 한다.
- /smallchat 행동에 대해서는 args 필드의 배열의 첫번째에 적절한 인사말을 적어야 한다.
- args 필드에는 추가적인 정보가 없다면 빈 배열을 출력한다.
- 다른 문장이나 설명은 절대 추가하지 않는다.
- 아무 생각이 떠오르지 않으면 /smallchat 행동을 선택한다.
`

const chatbotUserPromptFmt = "다음은 사용자의 채팅 메시지. 이 메시지를 분석해서 적절한 행동을 선택해:\n%s"

func NewLottoAI(ctx context.Context, model string) (*LottoAI, error) {
	g, err := genkit.Init(ctx,
		genkit.WithPlugins(
			&googlegenai.GoogleAI{},
		),
		genkit.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Genkit: %w", err)
	}

	la := &LottoAI{}
	la.ChatbotFlow = genkit.DefineFlow(
		g, "chatbotFlow",
		func(ctx context.Context, msg string) (Cmd, error) {
			la.mu.Lock()
			defer la.mu.Unlock()

			c, _, err := genkit.GenerateData[Cmd](
				ctx, g,
				ai.WithSystem(chatbotSystemPrompt),
				ai.WithPrompt(fmt.Sprintf(chatbotUserPromptFmt, msg)),
			)
			if err != nil {
				return Cmd{}, fmt.Errorf("failed to route message: %w", err)
			}
			return normalizeCmd(*c), nil
		},
	)

	return la, nil
}

// Route asks the model which command a free text message means.
func (la *LottoAI) Route(ctx context.Context, msg string) (Cmd, error) {
	return la.ChatbotFlow.Run(ctx, msg)
}

var knownActions = map[string]bool{
	"/gen": true, "/show": true, "/rm": true, "/clear": true,
	"/export": true, "/smallchat": true,
}

func normalizeCmd(c Cmd) Cmd {
	c.Action = strings.ToLower(strings.TrimSpace(c.Action))
	if !strings.HasPrefix(c.Action, "/") {
		c.Action = "/" + c.Action
	}
	if !knownActions[c.Action] {
		c.Action = "/smallchat"
	}
	return c
}

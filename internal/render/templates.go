package render

// Bootstrap 5 via CDN, same look for the index and every statement.

const indexHTML = `<!doctype html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .Company.Name }} &mdash; Customer Statements &mdash; {{ .AsOf }}</title>
<link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet"
      integrity="sha384-QWTKZyjpPEjISv5WaRU9OFeRpok6YctnYmDr5pNlyT2bRjXh0JMhjY6hW+ALEwIH" crossorigin="anonymous">
<style>
  body { margin: 24px; }
  .sticky-th th { position: sticky; top: 0; background: #f8f9fa; z-index: 1; }
  .pre { white-space: pre-line; }
  @media print { * { -webkit-print-color-adjust: exact; print-color-adjust: exact; } }
</style>
</head>
<body class="container-lg">
  <header class="mb-3">
    <div class="d-flex align-items-center gap-3">
      {{ if .Company.LogoSrc }}
        <img src="{{ .Company.LogoSrc }}" alt="{{ .Company.Name }} logo" style="height:48px; width:auto;">
      {{ end }}
      <div>
        <h1 class="h3 mb-1">{{ .Company.Name }} &mdash; Customer Statements</h1>
        <div class="text-muted small">
          {{ .Company.Email }} &bull; {{ .Company.Phone }} &bull; <span class="pre d-inline">{{ .Company.Address }}</span>
        </div>
        <span class="badge text-bg-light mt-2">As of {{ .AsOf }}</span>
      </div>
    </div>
  </header>

  <div class="mb-3">
    <input id="q" class="form-control form-control-sm" placeholder="Search customer or amount&hellip;" oninput="filt()">
  </div>

  <div class="table-responsive">
    <table class="table table-sm table-striped align-middle">
      <thead class="sticky-th">
        <tr>
          <th>Customer</th>
          <th class="text-end">Total Due</th>
          <th>Statement</th>
        </tr>
      </thead>
      <tbody id="rows">
      {{ range .Rows }}
        <tr>
          <td>{{ .Customer }}</td>
          <td class="text-end">{{ .TotalDueFmt }}</td>
          <td><a class="link-primary" href="{{ .RelPath }}">Open statement</a></td>
        </tr>
      {{ end }}
      </tbody>
      <tfoot class="table-group-divider">
        <tr>
          <td>Grand Total</td>
          <td id="grand-total" data-total="{{ .GrandTotal }}" class="text-end fw-semibold">{{ .GrandTotalFmt }}</td>
          <td></td>
        </tr>
      </tfoot>
    </table>
  </div>

<script>
function filt(){
  const q=(document.getElementById('q').value||'').toLowerCase();
  document.querySelectorAll('#rows tr').forEach(tr=>{
    const name = tr.children[0].innerText.toLowerCase();
    const amt  = tr.children[1].innerText.toLowerCase();
    tr.style.display = (name.includes(q)||amt.includes(q)) ? "" : "none";
  });
}
</script>
</body>
</html>
`

const statementHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .Company.Name }} &mdash; Statement &mdash; {{ .Customer }}</title>
<link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet"
      integrity="sha384-QWTKZyjpPEjISv5WaRU9OFeRpok6YctnYmDr5pNlyT2bRjXh0JMhjY6hW+ALEwIH" crossorigin="anonymous">
<style>
  body { margin: 24px; }
  .pre { white-space: pre-line; }
  .overdue td { color: #b10000 !important; }
  .credit  td { color: #0a6d0a !important; }
  .overdue td.amt, .credit td.amt { font-weight: 600; }
  @media print { * { -webkit-print-color-adjust: exact; print-color-adjust: exact; } }
</style>
</head>
<body class="container-lg">
  <header class="mb-3">
    <div class="d-flex align-items-center gap-3">
      {{ if .Company.LogoSrc }}<img src="{{ .Company.LogoSrc }}" alt="{{ .Company.Name }}" style="height:48px; width:auto">{{ end }}
      <div>
        <h1 class="h4 mb-1">{{ .Company.Name }} &mdash; Customer Statement</h1>
        <div class="text-muted small">
          {{ .Company.Email }} &bull; {{ .Company.Phone }} &bull; <span class="pre d-inline">{{ .Company.Address }}</span>
        </div>
        <span class="badge text-bg-light mt-1">As of {{ .AsOf }}</span>
      </div>
    </div>
  </header>

  <section class="card mb-3">
    <div class="card-body">
      <h2 class="h5 mb-2">{{ .Customer }}</h2>
      {{ range .Metrics }}
        <div><span class="fw-semibold">{{ .Label }}:</span> {{ .Value }}</div>
      {{ end }}
      {{ if .Company.PayNowURL }}
        <div class="mt-2">
          <a class="btn btn-sm btn-primary" href="{{ .Company.PayNowURL }}">Pay now</a>
        </div>
      {{ end }}
    </div>
  </section>

  <section class="card mb-3">
    <div class="card-body">
      <h2 class="h6 mb-2">Invoice Detail</h2>
      <div class="table-responsive">
        <table class="table table-sm table-striped align-middle">
          <thead>
            <tr>
              <th>Type</th><th>Invoice #</th><th>Invoice Date</th><th>Due Date</th><th>Terms</th><th>PO #</th>
              <th class="text-end">Open Balance</th><th class="text-center">Bucket</th><th class="text-end">Days Past Due</th>
            </tr>
          </thead>
          <tbody>
          {{ range .Rows }}
            <tr class="{{ .RowClass }}">
              <td>{{ .Type }}</td>
              <td>{{ .Num }}</td>
              <td>{{ .InvoiceDate }}</td>
              <td>{{ .DueDate }}</td>
              <td>{{ .Terms }}</td>
              <td>{{ .PO }}</td>
              <td class="text-end amt">{{ .AmountFmt }}</td>
              <td class="text-center">{{ .Bucket }}</td>
              <td class="text-end">{{ if gt .DaysPastDue 0 }}{{ .DaysPastDue }}{{ end }}</td>
            </tr>
          {{ end }}
          </tbody>
          <tfoot>
            <tr class="table-group-divider">
              <td colspan="6" class="text-end fw-semibold">Total due</td>
              <td class="text-end fw-semibold">{{ .TotalDueFmt }}</td>
              <td></td><td></td>
            </tr>
          </tfoot>
        </table>
      </div>
    </div>
  </section>

  <section class="card mb-3">
    <div class="card-body">
      <h2 class="h6 mb-2">Aging Summary</h2>
      <div class="table-responsive" style="max-width:460px">
        <table class="table table-sm align-middle">
          <thead><tr><th>Bucket</th><th class="text-end">Amount</th></tr></thead>
          <tbody>
            {{ range .BucketTotals }}
              <tr><td>{{ .Label }}</td><td class="text-end">{{ .AmountFmt }}</td></tr>
            {{ end }}
          </tbody>
          <tfoot class="table-group-divider">
            <tr><td class="fw-semibold">Total</td><td class="text-end fw-semibold">{{ .TotalDueFmt }}</td></tr>
          </tfoot>
        </table>
      </div>

      <div class="text-muted small">Overdue lines are red. Credits show in green.</div>
      <div class="text-muted small pre mt-2">{{ .Company.RemitTo }}</div>
    </div>
  </section>
</body>
</html>
`

const emailTXT = `Subject: Statement as of {{ .AsOf }} — {{ .Customer }} — {{ .Company.Name }}

Hi {{ .Customer }},

Please find your current statement attached/linked. As of {{ .AsOf }}, your outstanding balance is {{ .TotalDueFmt }}.

Remit to:
{{ .Company.RemitTo }}

If you have questions or need copies of invoices, please email {{ .Company.Email }} or call {{ .Company.Phone }}.
{{ if .Company.PayNowURL }}You may also pay online: {{ .Company.PayNowURL }}{{ end }}

Thanks,
Accounts Receivable
{{ .Company.Name }}
`

package render

// quotationTemplate is the complete quotation document. Presentation is
// inline so the markup stands alone when handed to a headless browser.
const quotationTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Solar Quotation {{.Number}}</title>
<style>
  * { box-sizing: border-box; margin: 0; padding: 0; }
  body { font-family: Arial, Helvetica, sans-serif; color: #1f2933; font-size: 13px; background: #ffffff; }
  .page { width: 100%; max-width: 760px; margin: 0 auto; padding: 24px 28px; }
  .header { display: flex; justify-content: space-between; align-items: flex-start; border-bottom: 3px solid #1a7f3c; padding-bottom: 14px; }
  .company h1 { font-size: 22px; color: #1a7f3c; }
  .company p { font-size: 11px; color: #52606d; margin-top: 3px; }
  .quote-meta { text-align: right; font-size: 12px; }
  .quote-meta .number { font-size: 15px; font-weight: bold; color: #1a7f3c; }
  h2 { font-size: 13px; text-transform: uppercase; letter-spacing: 0.06em; color: #1a7f3c; margin: 20px 0 8px; }
  .block { border: 1px solid #d3dce6; border-radius: 4px; padding: 10px 12px; }
  .grid { display: flex; flex-wrap: wrap; }
  .grid .cell { width: 50%; padding: 3px 0; }
  .cell .label { color: #52606d; font-size: 11px; }
  .cell .value { font-weight: bold; }
  table { width: 100%; border-collapse: collapse; margin-top: 6px; }
  th, td { border: 1px solid #d3dce6; padding: 6px 8px; text-align: left; }
  th { background: #edf4ee; font-size: 11px; text-transform: uppercase; letter-spacing: 0.04em; }
  td.amount, th.amount { text-align: right; white-space: nowrap; }
  tr.total td { font-weight: bold; background: #f5f7fa; }
  tr.payable td { font-weight: bold; background: #e3f2e7; font-size: 14px; }
  .savings { display: flex; margin-top: 6px; }
  .savings .box { flex: 1; border: 1px solid #d3dce6; border-radius: 4px; padding: 10px; margin-right: 8px; text-align: center; }
  .savings .box:last-child { margin-right: 0; }
  .savings .big { font-size: 16px; font-weight: bold; color: #1a7f3c; margin-top: 3px; }
  .terms { font-size: 11px; color: #52606d; margin-top: 6px; }
  .terms li { margin: 3px 0 3px 16px; }
  .signatures { display: flex; justify-content: space-between; margin-top: 36px; }
  .signatures .sig { width: 40%; border-top: 1px solid #1f2933; padding-top: 5px; font-size: 11px; text-align: center; }
  .footer { margin-top: 26px; border-top: 1px solid #d3dce6; padding-top: 8px; font-size: 10px; color: #7b8794; text-align: center; }
</style>
</head>
<body>
<div class="page">

  <div class="header">
    <div class="company">
      <h1>GreenVolt Solar Pvt. Ltd.</h1>
      <p>Rooftop Solar Design &amp; Installation</p>
      <p>No. 42, Mount Road, Chennai 600002 &middot; +91 44 4200 4200 &middot; sales@greenvoltsolar.in</p>
    </div>
    <div class="quote-meta">
      <div class="number">{{.Number}}</div>
      <div>Date: {{.Date}}</div>
      <div>Valid for 30 days</div>
    </div>
  </div>

  <h2>Customer</h2>
  <div class="block grid">
    <div class="cell"><div class="label">Name</div><div class="value">{{.CustomerName}}</div></div>
    <div class="cell"><div class="label">Phone</div><div class="value">{{.CustomerPhone}}</div></div>
    <div class="cell"><div class="label">Email</div><div class="value">{{.CustomerEmail}}</div></div>
    <div class="cell"><div class="label">Site Address</div><div class="value">{{.CustomerAddress}}</div></div>
  </div>

  <h2>Recommended System</h2>
  <div class="block grid">
    <div class="cell"><div class="label">System Capacity</div><div class="value">{{.SystemKW}} kW</div></div>
    <div class="cell"><div class="label">System Type</div><div class="value">{{.SystemType}}</div></div>
    <div class="cell"><div class="label">Location</div><div class="value">{{.LocationName}} ({{.SunHours}} sun hrs/day)</div></div>
    <div class="cell"><div class="label">Roof Area Considered</div><div class="value">{{.RoofArea}} sq ft</div></div>
    <div class="cell"><div class="label">Current Monthly Bill</div><div class="value">&#8377; {{.MonthlyBill}}</div></div>
    <div class="cell"><div class="label">Estimated Generation</div><div class="value">{{.DailyKWh}} kWh/day &middot; {{.MonthlyKWh}} kWh/month</div></div>
  </div>

  <h2>Cost Breakdown</h2>
  <table>
    <tr><th>Item</th><th>Specification</th><th class="amount">Amount (&#8377;)</th></tr>
    <tr><td>Solar Panels</td><td>{{.PanelLabel}} &middot; {{.PanelWarranty}} yr warranty</td><td class="amount">{{.PanelCost}}</td></tr>
    <tr><td>Inverter</td><td>{{.InverterLabel}} &middot; {{.InverterWarranty}} yr warranty</td><td class="amount">{{.InverterCost}}</td></tr>
    <tr><td>Wiring &amp; Cabling</td><td>{{.WiringLabel}} &middot; {{.WiringWarranty}} yr warranty</td><td class="amount">{{.WiringCost}}</td></tr>
    <tr><td>Installation</td><td>Design, labour and commissioning</td><td class="amount">{{.InstallationCost}}</td></tr>
    <tr><td>Mounting &amp; Earthing</td><td>Structure, earthing kit, lightning arrestor</td><td class="amount">{{.OtherCost}}</td></tr>
    <tr class="total"><td colspan="2">Itemized Total</td><td class="amount">{{.ComputedTotal}}</td></tr>
    {{if .HasOverride}}<tr class="total"><td colspan="2">Quoted Total</td><td class="amount">{{.TotalCost}}</td></tr>{{end}}
    <tr><td colspan="2">Government Subsidy</td><td class="amount">&minus; {{.Subsidy}}</td></tr>
    <tr class="payable"><td colspan="2">Net Payable</td><td class="amount">&#8377; {{.NetPayable}}</td></tr>
  </table>

  <h2>Projected Savings</h2>
  <div class="savings">
    <div class="box"><div class="label">Monthly Savings</div><div class="big">&#8377; {{.MonthlySavings}}</div></div>
    <div class="box"><div class="label">Yearly Savings</div><div class="big">&#8377; {{.YearlySavings}}</div></div>
    <div class="box"><div class="label">Payback Period</div><div class="big">{{.PaybackYears}} years</div></div>
    <div class="box"><div class="label">CO&#8322; Offset</div><div class="big">{{.CarbonOffset}} t/yr</div></div>
  </div>

  <h2>Terms &amp; Conditions</h2>
  <ul class="terms">
    <li>Prices include material, transport and installation at the site address above.</li>
    <li>Subsidy amount is indicative and subject to government approval at the time of installation.</li>
    <li>50% advance with order confirmation, balance on commissioning.</li>
    <li>Generation figures are estimates based on average irradiance and are not a performance guarantee.</li>
    <li>Net metering application support is included; statutory fees are charged at actuals.</li>
  </ul>

  <div class="signatures">
    <div class="sig">Customer Signature</div>
    <div class="sig">For GreenVolt Solar Pvt. Ltd.</div>
  </div>

  <div class="footer">
    GreenVolt Solar Pvt. Ltd. &middot; CIN U40106TN2015PTC099999 &middot; This quotation was generated electronically.
  </div>

</div>
</body>
</html>
`
